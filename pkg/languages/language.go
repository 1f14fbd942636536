// Package languages 提供编辑器使用的语言处理器：校验、美化、压缩，
// 以及根据内容自动选择处理器的注册表。
package languages

import (
	"maps"
)

// Language 单一文本格式的处理器
type Language interface {
	// Name 唯一短名称，如 "json"
	Name() string

	// Label 展示给用户的名称
	Label() string

	// EditorMode 宿主编辑器的模式配置，本包不解释其内容
	EditorMode() EditorMode

	// WrapByDefault 是否默认自动换行
	WrapByDefault() bool

	// IsValid 判断内容是否属于该格式，任何解析失败都返回 false
	IsValid(raw string) bool

	// Beautify 美化内容，调用前应先通过 IsValid
	Beautify(raw string) (string, error)

	// Minify 压缩内容
	Minify(text string) (string, error)
}

// EditorMode 编辑器模式配置
type EditorMode map[string]any

// info 所有处理器共享的元数据
type info struct {
	name  string
	label string
	mode  EditorMode
	wrap  bool
}

// Name 返回名称
func (i *info) Name() string {
	return i.name
}

// Label 返回展示名称
func (i *info) Label() string {
	return i.label
}

// EditorMode 返回模式配置的副本
func (i *info) EditorMode() EditorMode {
	return maps.Clone(i.mode)
}

// WrapByDefault 返回默认换行设置
func (i *info) WrapByDefault() bool {
	return i.wrap
}

// LanguageError 美化或压缩失败
type LanguageError struct {
	Language string
	Op       string
	Err      error
}

func (e *LanguageError) Error() string {
	return e.Language + ": " + e.Op + ": " + e.Err.Error()
}

func (e *LanguageError) Unwrap() error {
	return e.Err
}

// safeValid 捕获校验过程中的 panic 并视为无效
func safeValid(check func() bool) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return check()
}
