package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/nerdneilsfield/go-editor-lang/internal/config"
	"github.com/nerdneilsfield/go-editor-lang/internal/logger"
	"github.com/nerdneilsfield/go-editor-lang/pkg/languages"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// options 命令行标志
type options struct {
	cfgFile  string
	debug    bool
	language string
	noColor  bool
	output   string
	write    bool
}

// app 每次执行共享的运行时状态
type app struct {
	opts     *options
	cfg      *config.Config
	log      *zap.Logger
	registry *languages.Registry
}

// NewRootCommand 创建根命令
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	opts := &options{}
	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:   "langtool",
		Short: "检测文本格式并进行美化或压缩",
		Long: `langtool 根据内容自动识别文本格式，并使用对应的处理器美化或压缩内容。

支持的格式（按检测顺序）:
  - json: JSON
  - html: HTML / XML 标记
  - toml: TOML
  - yaml: YAML
  - markdown: Markdown
  - text: 纯文本（兜底）

用法示例：
  langtool detect data.txt           # 输出识别出的格式
  langtool beautify page.html        # 美化并输出到标准输出
  langtool minify -w config.json     # 压缩并写回文件
  cat data | langtool beautify -l json`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "", "配置文件路径（默认 $HOME/.langtool.yaml）")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "输出调试日志")
	flags.StringVarP(&opts.language, "language", "l", "", "指定格式，跳过自动检测")
	flags.BoolVar(&opts.noColor, "no-color", false, "禁用彩色输出")

	rootCmd.AddCommand(
		newDetectCommand(a),
		newTransformCommand(a, "beautify", "美化内容", languages.Language.Beautify),
		newTransformCommand(a, "minify", "压缩内容", languages.Language.Minify),
		newListCommand(a),
	)

	return rootCmd
}

// init 加载配置并创建日志和注册表，命令行标志优先于配置文件
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.opts.cfgFile)
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = a.opts.debug
	}
	if flags.Changed("language") {
		cfg.Language = a.opts.language
	}
	if a.opts.noColor {
		cfg.Color = false
	}
	if flags.Lookup("output") != nil && flags.Changed("output") {
		cfg.OutputFormat = a.opts.output
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	if !cfg.Color {
		color.NoColor = true
	}

	level := zapcore.DebugLevel
	if !cfg.Debug {
		if level, err = logger.ParseLevel(cfg.LogLevel); err != nil {
			return err
		}
	}
	if a.log, err = logger.New(level); err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}

	a.registry, err = languages.NewRegistry(languages.Text, languages.All(), languages.WithLogger(a.log))
	if err != nil {
		return err
	}

	a.log.Debug("configuration loaded",
		zap.String("language", cfg.Language),
		zap.String("output_format", cfg.OutputFormat),
		zap.Bool("color", cfg.Color))

	return nil
}
