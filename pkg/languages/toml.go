package languages

import (
	"bytes"
	"strings"

	"github.com/BurntSushi/toml"
)

// TOMLLanguage TOML 处理器。
// 至少包含一个键才算有效，空文档或只有注释的文本交给其他处理器。
type TOMLLanguage struct {
	info
}

// NewTOMLLanguage 创建 TOML 处理器
func NewTOMLLanguage() *TOMLLanguage {
	return &TOMLLanguage{
		info: info{
			name:  "toml",
			label: "TOML",
			mode:  EditorMode{"name": "toml"},
		},
	}
}

func (l *TOMLLanguage) decode(raw string) (map[string]any, error) {
	v := make(map[string]any)
	if _, err := toml.Decode(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (l *TOMLLanguage) encode(v map[string]any, indent string) (string, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = indent
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// IsValid 判断能否解析且至少有一个键
func (l *TOMLLanguage) IsValid(raw string) bool {
	return safeValid(func() bool {
		v, err := l.decode(raw)
		return err == nil && len(v) > 0
	})
}

// Beautify 以两个空格缩进重新输出，键按字典序排列
func (l *TOMLLanguage) Beautify(raw string) (string, error) {
	v, err := l.decode(raw)
	if err != nil {
		return "", &LanguageError{Language: l.name, Op: "beautify", Err: err}
	}
	out, err := l.encode(v, "  ")
	if err != nil {
		return "", &LanguageError{Language: l.name, Op: "beautify", Err: err}
	}
	return out, nil
}

// Minify 不缩进重新输出并去掉空行
func (l *TOMLLanguage) Minify(text string) (string, error) {
	v, err := l.decode(text)
	if err != nil {
		return "", &LanguageError{Language: l.name, Op: "minify", Err: err}
	}
	out, err := l.encode(v, "")
	if err != nil {
		return "", &LanguageError{Language: l.name, Op: "minify", Err: err}
	}

	lines := strings.Split(out, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n"), nil
}
