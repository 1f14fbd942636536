package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeautify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "nested tags",
			input:    "<a><b></b></a>",
			expected: "\n<a>\n    <b>\n    </b>\n</a>",
		},
		{
			name:     "unmatched closing tag clamps depth",
			input:    "</a>",
			expected: "\n</a>",
		},
		{
			name:     "extra closing tags never indent negatively",
			input:    "<a></a></b><c></c>",
			expected: "\n<a>\n</a>\n</b>\n<c>\n</c>",
		},
		{
			name:     "collapse repeated spaces",
			input:    "<p>hello    world</p>",
			expected: "\n<p>hello world\n</p>",
		},
		{
			name:     "drop blank lines between tags",
			input:    "<a>\n\n<b></b>\n</a>",
			expected: "\n<a>\n    <b>\n    </b>\n</a>",
		},
		{
			name:     "keep newline inside text",
			input:    "<p>\ntext\n</p>",
			expected: "\n<p>\ntext\n</p>",
		},
		{
			name:     "keep newline when no tag follows",
			input:    "<p></p>\ntrailing\n",
			expected: "\n<p>\n</p>\ntrailing\n",
		},
		{
			name:     "self-closing tag indents following siblings",
			input:    "<a><b/><c></c></a>",
			expected: "\n<a>\n    <b/>\n        <c>\n        </c>\n    </a>",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text untouched",
			input:    "no tags here",
			expected: "no tags here",
		},
		{
			name:     "multibyte text preserved",
			input:    "<p>你好  世界</p>",
			expected: "\n<p>你好 世界\n</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Beautify(tt.input))
		})
	}
}

func TestBeautifyNeverNegativeIndent(t *testing.T) {
	out := Beautify(strings.Repeat("</x>", 5) + "<y></y>")
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "</x>") {
			assert.Equal(t, "</x>", line)
		}
	}
	assert.Contains(t, out, "\n<y>\n</y>")
}

func TestMinify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strip comment between tags",
			input:    "<a><!-- note --><b/></a>",
			expected: "<a><b/></a>",
		},
		{
			name:     "collapse whitespace between tags",
			input:    "<a>\n    <b>  x  </b>\n</a>",
			expected: "<a><b>  x  </b></a>",
		},
		{
			name:     "multiline comment",
			input:    "<a>\n<!--\n  line one\n  line two\n-->\n<b></b></a>",
			expected: "<a><b></b></a>",
		},
		{
			name:     "keep conditional comment",
			input:    "<a><!--[if IE]><p>ie</p><![endif]--></a>",
			expected: "<a><!--[if IE]><p>ie</p><![endif]--></a>",
		},
		{
			name:     "attribute whitespace untouched",
			input:    `<a href="x"   class="y"> </a>`,
			expected: `<a href="x"   class="y"></a>`,
		},
		{
			name:     "beautified output round trip",
			input:    Beautify("<a><b></b><c>text</c></a>"),
			expected: "\n<a><b></b><c>text\n    </c></a>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Minify(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCheck(t *testing.T) {
	t.Run("Well Formed", func(t *testing.T) {
		inputs := []string{
			"<a></a>",
			"<a><b/></a>",
			`<?xml version="1.0"?><root attr="1">text</root>`,
			"<!-- lead --><html><body><p>hi</p></body></html>\n",
			`<?xml version="1.0" encoding="ISO-8859-1"?><r>x</r>`,
		}
		for _, in := range inputs {
			assert.NoError(t, Check(in), in)
			assert.True(t, WellFormed(in), in)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		inputs := []string{
			"",
			"5",
			"not json not xml @@@",
			"<a>",
			"<a></b>",
			"<a><b></a></b>",
			"<br>",
			"<p>&nbsp;</p>",
		}
		for _, in := range inputs {
			assert.Error(t, Check(in), in)
			assert.False(t, WellFormed(in), in)
		}
	})

	t.Run("Root Rules", func(t *testing.T) {
		assert.ErrorIs(t, Check("  "), ErrNoRootElement)
		assert.ErrorIs(t, Check("<a></a><b></b>"), ErrMultipleRoots)
		assert.ErrorIs(t, Check("<a></a>tail"), ErrTextOutsideRoot)
	})
}
