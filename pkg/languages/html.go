package languages

import (
	"github.com/nerdneilsfield/go-editor-lang/internal/markup"
)

// HTMLLanguage HTML/XML 标记处理器。
// 校验走严格的 XML 解析，美化和压缩只做文本扫描。
type HTMLLanguage struct {
	info
}

// NewHTMLLanguage 创建 HTML 处理器
func NewHTMLLanguage() *HTMLLanguage {
	return &HTMLLanguage{
		info: info{
			name:  "html",
			label: "HTML",
			mode: EditorMode{
				"name": "htmlmixed",
				"tags": map[string]any{
					"style": []any{
						[]any{"type", `^text/(x-)?scss$`, "text/x-scss"},
						[]any{nil, nil, "css"},
					},
					"custom": []any{
						[]any{nil, nil, "customMode"},
					},
				},
			},
		},
	}
}

// IsValid 判断是否为结构完整的标记文档
func (l *HTMLLanguage) IsValid(raw string) bool {
	return markup.WellFormed(raw)
}

// Beautify 按标签嵌套深度重建缩进
func (l *HTMLLanguage) Beautify(raw string) (string, error) {
	return markup.Beautify(raw), nil
}

// Minify 删除注释和标签间空白
func (l *HTMLLanguage) Minify(text string) (string, error) {
	out, err := markup.Minify(text)
	if err != nil {
		return "", &LanguageError{Language: l.name, Op: "minify", Err: err}
	}
	return out, nil
}
