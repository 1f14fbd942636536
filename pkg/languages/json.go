package languages

import (
	"bytes"
	"errors"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// jsonIndent 美化时的缩进宽度
const jsonIndent = "  "

// Width 为 0 时数组总是逐行展开
var jsonPrettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   jsonIndent,
	SortKeys: false,
}

// ErrInvalidJSON 内容不是合法 JSON
var ErrInvalidJSON = errors.New("invalid json")

// JSONLanguage JSON 处理器
type JSONLanguage struct {
	info
}

// NewJSONLanguage 创建 JSON 处理器
func NewJSONLanguage() *JSONLanguage {
	return &JSONLanguage{
		info: info{
			name:  "json",
			label: "JSON",
			mode: EditorMode{
				"name":            "javascript",
				"json":            true,
				"statementIndent": 2,
			},
		},
	}
}

// IsValid 判断是否为完整的 JSON 文本
func (l *JSONLanguage) IsValid(raw string) bool {
	return safeValid(func() bool {
		return gjson.Valid(raw)
	})
}

// Beautify 以两个空格缩进重新输出。
// 只调整空白，重复键和数字、字符串的原始写法保持不变。
func (l *JSONLanguage) Beautify(raw string) (string, error) {
	if !gjson.Valid(raw) {
		return "", &LanguageError{Language: l.name, Op: "beautify", Err: ErrInvalidJSON}
	}
	out := pretty.PrettyOptions([]byte(raw), jsonPrettyOptions)
	return string(bytes.TrimSuffix(out, []byte("\n"))), nil
}

// Minify 去掉所有多余空白
func (l *JSONLanguage) Minify(text string) (string, error) {
	if !gjson.Valid(text) {
		return "", &LanguageError{Language: l.name, Op: "minify", Err: ErrInvalidJSON}
	}
	return string(pretty.Ugly([]byte(text))), nil
}
