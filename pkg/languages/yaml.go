package languages

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotMapping YAML 文档的根节点不是映射
	ErrNotMapping = errors.New("yaml root is not a mapping")
	// ErrMultipleDocuments 输入包含多个文档（例如带 front matter 的 Markdown）
	ErrMultipleDocuments = errors.New("yaml input contains more than one document")
	// ErrSinglePair 只有一个标量键值对，无法与 "Note: text" 这类文本区分
	ErrSinglePair = errors.New("yaml mapping holds a single scalar pair")
)

// YAMLLanguage YAML 处理器。
// 只接受单个文档且根节点为映射，否则几乎所有纯文本都会被当成 YAML 标量。
// 映射只有一个键时，值必须是集合或多行块标量。
type YAMLLanguage struct {
	info
}

// NewYAMLLanguage 创建 YAML 处理器
func NewYAMLLanguage() *YAMLLanguage {
	return &YAMLLanguage{
		info: info{
			name:  "yaml",
			label: "YAML",
			mode:  EditorMode{"name": "yaml"},
		},
	}
}

func (l *YAMLLanguage) parse(raw string) (*yaml.Node, error) {
	dec := yaml.NewDecoder(strings.NewReader(raw))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNotMapping
		}
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	var next yaml.Node
	if err := dec.Decode(&next); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, ErrMultipleDocuments
	}

	if !structured(doc.Content[0]) {
		return nil, ErrSinglePair
	}
	return &doc, nil
}

// structured 映射至少有两个键，或者唯一的值是集合或块标量
func structured(root *yaml.Node) bool {
	if len(root.Content) != 2 {
		return len(root.Content) > 2
	}
	value := root.Content[1]
	switch value.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		return true
	case yaml.ScalarNode:
		return value.Style&(yaml.LiteralStyle|yaml.FoldedStyle) != 0
	}
	return false
}

func (l *YAMLLanguage) encode(doc *yaml.Node) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// IsValid 判断能否解析为单个根节点是映射的文档
func (l *YAMLLanguage) IsValid(raw string) bool {
	return safeValid(func() bool {
		_, err := l.parse(raw)
		return err == nil
	})
}

// Beautify 以两个空格缩进重新输出，保留键顺序和注释
func (l *YAMLLanguage) Beautify(raw string) (string, error) {
	doc, err := l.parse(raw)
	if err != nil {
		return "", &LanguageError{Language: l.name, Op: "beautify", Err: err}
	}
	out, err := l.encode(doc)
	if err != nil {
		return "", &LanguageError{Language: l.name, Op: "beautify", Err: err}
	}
	return out, nil
}

// Minify 去掉注释并以单行 flow 风格输出
func (l *YAMLLanguage) Minify(text string) (string, error) {
	doc, err := l.parse(text)
	if err != nil {
		return "", &LanguageError{Language: l.name, Op: "minify", Err: err}
	}

	stripComments(doc)
	doc.Content[0].Style = yaml.FlowStyle

	out, err := l.encode(doc)
	if err != nil {
		return "", &LanguageError{Language: l.name, Op: "minify", Err: err}
	}
	return out, nil
}

func stripComments(n *yaml.Node) {
	n.HeadComment = ""
	n.LineComment = ""
	n.FootComment = ""
	for _, c := range n.Content {
		stripComments(c)
	}
}
