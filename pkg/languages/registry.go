package languages

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

var (
	// ErrDuplicateLanguage 名称重复注册
	ErrDuplicateLanguage = errors.New("language already registered")
	// ErrFallbackNotRegistered 兜底处理器不在列表中
	ErrFallbackNotRegistered = errors.New("fallback language is not registered")
	// ErrInvalidLanguage 处理器为 nil 或动态类型不可比较
	ErrInvalidLanguage = errors.New("invalid language")
)

// Registry 有序的语言处理器列表。
// 注册顺序即检测优先级；创建后不可修改，可并发读取。
type Registry struct {
	languages []Language
	byName    map[string]Language
	fallback  Language
	logger    *zap.Logger
}

// Option 注册表选项
type Option func(*Registry)

// WithLogger 设置日志记录器
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry 创建注册表。fallback 必须是 languages 中的同一个实例。
// 兜底处理器按实例比较，处理器应使用指针类型。
func NewRegistry(fallback Language, languages []Language, opts ...Option) (*Registry, error) {
	r := &Registry{
		languages: make([]Language, 0, len(languages)),
		byName:    make(map[string]Language, len(languages)),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	for i, lang := range languages {
		if lang == nil {
			return nil, fmt.Errorf("%w: nil entry at index %d", ErrInvalidLanguage, i)
		}
		if !reflect.TypeOf(lang).Comparable() {
			return nil, fmt.Errorf("%w: %T is not comparable", ErrInvalidLanguage, lang)
		}

		name := lang.Name()
		if _, exists := r.byName[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLanguage, name)
		}
		r.byName[name] = lang
		r.languages = append(r.languages, lang)
		if lang == fallback {
			r.fallback = lang
		}
	}

	if fallback == nil || r.fallback == nil {
		return nil, ErrFallbackNotRegistered
	}

	r.logger.Debug("language registry created",
		zap.Int("languages", len(r.languages)),
		zap.String("fallback", r.fallback.Name()))

	return r, nil
}

// Detect 按注册顺序依次尝试除兜底处理器以外的处理器，返回第一个校验通过的；
// 都不匹配时返回兜底处理器。
func (r *Registry) Detect(content string) Language {
	for _, lang := range r.languages {
		if lang == r.fallback {
			continue
		}
		if lang.IsValid(content) {
			r.logger.Debug("language detected",
				zap.String("language", lang.Name()),
				zap.Int("size", len(content)))
			return lang
		}
	}

	r.logger.Debug("no language matched, using fallback",
		zap.String("language", r.fallback.Name()),
		zap.Int("size", len(content)))
	return r.fallback
}

// ByName 按名称精确查找（区分大小写），包括兜底处理器
func (r *Registry) ByName(name string) (Language, bool) {
	lang, ok := r.byName[name]
	return lang, ok
}

// All 按注册顺序返回所有处理器
func (r *Registry) All() []Language {
	result := make([]Language, len(r.languages))
	copy(result, r.languages)
	return result
}

// Names 按注册顺序返回所有名称
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.languages))
	for _, lang := range r.languages {
		names = append(names, lang.Name())
	}
	return names
}

// Fallback 返回兜底处理器
func (r *Registry) Fallback() Language {
	return r.fallback
}
