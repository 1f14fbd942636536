package languages

// TextLanguage 纯文本，总是有效，美化和压缩都不改变内容。
// 注册表用它作为兜底处理器。
type TextLanguage struct {
	info
}

// NewTextLanguage 创建纯文本处理器
func NewTextLanguage() *TextLanguage {
	return &TextLanguage{
		info: info{
			name:  "text",
			label: "Text",
			mode:  EditorMode{"name": "text"},
			wrap:  true,
		},
	}
}

// IsValid 总是返回 true
func (l *TextLanguage) IsValid(string) bool {
	return true
}

// Beautify 原样返回
func (l *TextLanguage) Beautify(raw string) (string, error) {
	return raw, nil
}

// Minify 原样返回
func (l *TextLanguage) Minify(text string) (string, error) {
	return text, nil
}
