package markup

import (
	"strings"
)

// IndentUnit 每一层嵌套使用的缩进
const IndentUnit = "    "

// Beautify 通过一次从左到右的扫描重建标签嵌套缩进。
//
// 不构建 DOM：遇到开始标签前换行并按当前深度缩进，然后深度加一；
// 遇到结束标签时先减一（最小为 0）再换行缩进。连续空格折叠为一个，
// 下一个 '<' 之前只有空白的换行会被丢弃。
//
// 已知限制：自闭合标签（<br/>）按开始标签处理，之后的兄弟节点会多缩进一层。
func Beautify(src string) string {
	var b strings.Builder
	b.Grow(len(src) + len(src)/4)

	depth := 0
	for i := 0; i < len(src); i++ {
		c := src[i]
		var next byte
		if i+1 < len(src) {
			next = src[i+1]
		}

		switch {
		case c == '<' && next != '/':
			newline(&b, depth)
			depth++
		case c == '<' && next == '/':
			if depth--; depth < 0 {
				depth = 0
			}
			newline(&b, depth)
		case c == ' ' && next == ' ':
			continue
		case c == '\n' && blankUntilTag(src[i:]):
			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}

func newline(b *strings.Builder, depth int) {
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(IndentUnit, depth))
}

// blankUntilTag 判断 rest 到下一个 '<' 之间是否全是空白。
// 后面没有标签时返回 false，保留换行。
func blankUntilTag(rest string) bool {
	idx := strings.IndexByte(rest, '<')
	if idx < 0 {
		return false
	}
	return strings.TrimSpace(rest[:idx]) == ""
}
