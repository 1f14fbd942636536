package markup

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

var (
	// 注释：不匹配 <!--[if ...]> 条件注释和 <!--? 开头的块
	commentPattern = regexp2.MustCompile(`<!--\s*?[^\s?\[][\s\S]*?-->`, 0)
	// 标签之间的空白
	interTagPattern = regexp2.MustCompile(`>\s*<`, 0)
)

// Minify 删除注释并去掉相邻标签之间的空白。
//
// 纯文本替换，不重新解析。属性值里出现的 "-->" 会被误认为注释结束。
func Minify(src string) (string, error) {
	out, err := commentPattern.Replace(src, "", -1, -1)
	if err != nil {
		return "", fmt.Errorf("strip comments: %w", err)
	}

	out, err = interTagPattern.Replace(out, "><", -1, -1)
	if err != nil {
		return "", fmt.Errorf("collapse inter-tag whitespace: %w", err)
	}

	return out, nil
}
