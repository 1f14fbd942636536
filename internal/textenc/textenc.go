// Package textenc 将文件内容转换为 UTF-8 字符串，供语言检测使用。
package textenc

import (
	"bytes"
	"io"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// 按顺序尝试的候选编码
var candidates = []encoding.Encoding{
	simplifiedchinese.GBK,
	simplifiedchinese.GB18030,
	traditionalchinese.Big5,
	japanese.ShiftJIS,
	japanese.EUCJP,
	korean.EUCKR,
	charmap.Windows1252,
}

// printableRatio 候选解码结果中可打印字符的最低比例
const printableRatio = 0.9

// Decode 检测 data 的编码并返回 UTF-8 字符串。
// 识别不出时原样返回。
func Decode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	// BOM 优先
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return string(data[3:])
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		if s, ok := decodeWith(xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM), data[2:]); ok {
			return s
		}
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		if s, ok := decodeWith(xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM), data[2:]); ok {
			return s
		}
	}

	if utf8.Valid(data) {
		return string(data)
	}

	for _, enc := range candidates {
		if s, ok := decodeWith(enc, data); ok && isReasonableText(s) {
			return s
		}
	}

	return string(data)
}

func decodeWith(enc encoding.Encoding, data []byte) (string, bool) {
	res, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.NewDecoder()))
	if err != nil || !utf8.Valid(res) {
		return "", false
	}
	return string(res), true
}

// isReasonableText 可打印字符比例超过阈值才认为解码正确
func isReasonableText(text string) bool {
	if len(text) == 0 {
		return false
	}

	printable, total := 0, 0
	for _, r := range text {
		total++
		if r == utf8.RuneError {
			continue
		}
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			printable++
		}
	}

	return float64(printable)/float64(total) > printableRatio
}
