package languages

// Text 默认的兜底处理器
var Text = NewTextLanguage()

// defaultRegistry 内置处理器，检测顺序：json, html, toml, yaml, markdown
var defaultRegistry = mustRegistry(Text, []Language{
	Text,
	NewJSONLanguage(),
	NewHTMLLanguage(),
	NewTOMLLanguage(),
	NewYAMLLanguage(),
	NewMarkdownLanguage(),
})

func mustRegistry(fallback Language, languages []Language) *Registry {
	r, err := NewRegistry(fallback, languages)
	if err != nil {
		panic("languages: " + err.Error())
	}
	return r
}

// Default 返回内置注册表
func Default() *Registry {
	return defaultRegistry
}

// ByContent 根据内容选择处理器，不会返回 nil
func ByContent(content string) Language {
	return defaultRegistry.Detect(content)
}

// ByName 按名称查找内置处理器
func ByName(name string) (Language, bool) {
	return defaultRegistry.ByName(name)
}

// All 按注册顺序返回所有内置处理器
func All() []Language {
	return defaultRegistry.All()
}
