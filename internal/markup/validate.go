package markup

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

var (
	// ErrNoRootElement 文档中没有任何元素
	ErrNoRootElement = errors.New("markup: no root element")
	// ErrMultipleRoots 顶层出现多个元素
	ErrMultipleRoots = errors.New("markup: more than one root element")
	// ErrTextOutsideRoot 根元素之外存在非空白文本
	ErrTextOutsideRoot = errors.New("markup: text outside root element")
)

// Check 以严格 XML 语法解析 src，返回第一个解析错误。
// 要求恰好一个根元素，根元素外只允许空白、注释、处理指令和 DOCTYPE。
func Check(src string) error {
	decoder := xml.NewDecoder(strings.NewReader(src))
	decoder.Strict = true
	decoder.CharsetReader = charset.NewReaderLabel

	depth := 0
	roots := 0
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("markup: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
				if roots > 1 {
					return ErrMultipleRoots
				}
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && strings.TrimSpace(string(t)) != "" {
				return ErrTextOutsideRoot
			}
		}
	}

	if roots == 0 {
		return ErrNoRootElement
	}
	return nil
}

// WellFormed 报告 src 是否为结构完整的标记文档，任何解析失败都视为 false。
func WellFormed(src string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return Check(src) == nil
}
