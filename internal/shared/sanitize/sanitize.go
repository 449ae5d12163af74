// Package sanitize strips markup from untrusted text before it is classified
// or stored.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer removes every HTML tag and attribute from its input.
// A Sanitizer is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func New() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Text drops all markup, including the contents of script and style
// elements, and trims surrounding whitespace. The result is plain text:
// entities written by the policy are decoded again, so it must be escaped
// before being embedded in HTML.
func (s *Sanitizer) Text(input string) string {
	if input == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(input)))
}
