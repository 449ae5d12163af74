package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizer_Text(t *testing.T) {
	s := New()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "My invoice is wrong", "My invoice is wrong"},
		{"trims whitespace", "  hello  \n", "hello"},
		{"strips tags keeps text", "<b>urgent</b> refund", "urgent refund"},
		{"drops script body", "<script>alert('x')</script>hi", "hi"},
		{"drops attributes", `<a href="javascript:alert(1)" onclick="x()">link</a>`, "link"},
		{"only markup", "<img src=x onerror=alert(1)>", ""},
		{"keeps ampersand", "Tom & Jerry <i>LLC</i>", "Tom & Jerry LLC"},
		{"keeps apostrophe", "o'brien@example.com", "o'brien@example.com"},
		{"keeps quotes", `she said "refund" twice`, `she said "refund" twice`},
		{"keeps comparison", "cost is < 5 and > 2", "cost is < 5 and > 2"},
		{"keeps blockquote marker", "> approved by finance", "> approved by finance"},
		{"entities decode to text", "&lt;script&gt;", "<script>"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.Text(tt.input))
		})
	}
}
