package nlp

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxInputLength is the longest accepted command, in characters.
const MaxInputLength = 500

type denyPattern struct {
	label string
	re    *regexp.Regexp
}

// denyPatterns are checked in order; the first match rejects the input.
var denyPatterns = []denyPattern{
	{"shell metacharacters", regexp.MustCompile("[;&|`$]")},
	{"path traversal", regexp.MustCompile(`\.\.[\\/]`)},
	{"SQL comment", regexp.MustCompile(`--\s`)},
	{"SQL injection", regexp.MustCompile(`(?i)'\s*OR\s*'`)},
	{"SQL injection", regexp.MustCompile(`(?i)DROP\s+TABLE`)},
	{"script injection", regexp.MustCompile(`(?i)<script`)},
	{"javascript injection", regexp.MustCompile(`(?i)javascript:`)},
	{"null byte injection", regexp.MustCompile(`\x00`)},
}

// Sanitize rejects empty, oversized and dangerous input and collapses
// whitespace in whatever is left. It is idempotent on its own output.
func Sanitize(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", &Error{Kind: KindValidation, Reason: "Please enter a command"}
	}
	if utf8.RuneCountInString(text) > MaxInputLength {
		return "", &Error{
			Kind:   KindValidation,
			Reason: fmt.Sprintf("Command too long (max %d characters)", MaxInputLength),
		}
	}

	// Patterns run on the collapsed form so Unicode spaces cannot hide a
	// match that collapsing would later reassemble.
	collapsed := strings.Join(strings.Fields(text), " ")
	for _, p := range denyPatterns {
		if p.re.MatchString(collapsed) {
			return "", &Error{
				Kind:    KindValidation,
				Reason:  "Input contains prohibited pattern: " + p.label,
				Pattern: p.label,
			}
		}
	}

	return collapsed, nil
}
