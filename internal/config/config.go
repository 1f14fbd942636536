package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// 输出格式
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Config 保存 langtool 的所有配置
type Config struct {
	Debug        bool   `mapstructure:"debug"`
	LogLevel     string `mapstructure:"log_level"`     // debug 为 false 时使用的日志级别
	Language     string `mapstructure:"language"`      // 指定语言，为空时自动检测
	Color        bool   `mapstructure:"color"`         // 是否彩色输出
	OutputFormat string `mapstructure:"output_format"` // list 命令的输出格式: table 或 json
}

// LoadConfig 从文件加载配置。
// configPath 为空时在家目录和当前目录查找 .langtool.yaml，找不到则使用默认值。
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// 设置默认值
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".langtool")
		v.SetConfigType("yaml")
	}

	// 读取环境变量，例如 LANGTOOL_LANGUAGE
	v.SetEnvPrefix("LANGTOOL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// NewDefaultConfig 创建默认配置
func NewDefaultConfig() *Config {
	return &Config{
		Debug:        false,
		LogLevel:     "warn",
		Language:     "",
		Color:        true,
		OutputFormat: OutputTable,
	}
}

// Validate 检查配置取值
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("unsupported output_format %q (expected %s or %s)", c.OutputFormat, OutputTable, OutputJSON)
	}
	return nil
}

// setDefaults 设置默认值
func setDefaults(v *viper.Viper) {
	defaults := NewDefaultConfig()
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("language", defaults.Language)
	v.SetDefault("color", defaults.Color)
	v.SetDefault("output_format", defaults.OutputFormat)
}
