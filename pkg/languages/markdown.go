package languages

import (
	"strings"

	"github.com/Kunde21/markdownfmt/v3"
	"github.com/Kunde21/markdownfmt/v3/markdown"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	meta "github.com/yuin/goldmark-meta"
)

// MarkdownLanguage Markdown 处理器。
// 普通段落不足以判定为 Markdown，需要 front matter 或标题、列表、代码块、引用等块级结构。
type MarkdownLanguage struct {
	info
	md goldmark.Markdown
}

// NewMarkdownLanguage 创建 Markdown 处理器
func NewMarkdownLanguage() *MarkdownLanguage {
	return &MarkdownLanguage{
		info: info{
			name:  "markdown",
			label: "Markdown",
			mode:  EditorMode{"name": "markdown"},
			wrap:  true,
		},
		md: goldmark.New(goldmark.WithExtensions(meta.Meta)),
	}
}

// IsValid 判断内容是否带有 Markdown 特有的块级结构
func (l *MarkdownLanguage) IsValid(raw string) bool {
	return safeValid(func() bool {
		if strings.TrimSpace(raw) == "" {
			return false
		}

		ctx := parser.NewContext()
		doc := l.md.Parser().Parse(text.NewReader([]byte(raw)), parser.WithContext(ctx))
		if len(meta.Get(ctx)) > 0 {
			return true
		}

		for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
			switch n.Kind() {
			case ast.KindHeading, ast.KindList, ast.KindFencedCodeBlock, ast.KindBlockquote:
				return true
			}
		}
		return false
	})
}

// Beautify 使用 markdownfmt 规范化格式
func (l *MarkdownLanguage) Beautify(raw string) (string, error) {
	out, err := markdownfmt.Process("", []byte(raw),
		markdown.WithCodeFormatters(markdown.GoCodeFormatter),
	)
	if err != nil {
		return "", &LanguageError{Language: l.name, Op: "beautify", Err: err}
	}
	return string(out), nil
}

// Minify 合并连续空行并去掉首尾空行，代码块内容保持不变
func (l *MarkdownLanguage) Minify(src string) (string, error) {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	var kept []string
	inFence := false
	blank := false
	for _, line := range lines {
		if isFence(line) {
			inFence = !inFence
		}

		if !inFence && strings.TrimSpace(line) == "" {
			blank = len(kept) > 0
			continue
		}

		if blank {
			kept = append(kept, "")
			blank = false
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n"), nil
}

// isFence 判断是否为 ``` 或 ~~~ 代码块边界
func isFence(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return false
	}
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}
