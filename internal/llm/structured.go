package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// SchemaValidator validates a decoded value after JSON extraction.
type SchemaValidator[T any] func(T) error

var (
	openingFence = regexp.MustCompile("^```(?:json|JSON)?[ \t]*\n?")
	closingFence = regexp.MustCompile("\n?[ \t]*```$")
)

// ExtractJSON decodes the first JSON object found in raw model output.
// Markdown code fences around the object are removed first, and // or /* */
// comments outside strings are dropped before decoding. Any failure
// wraps ErrInvalidOutput. If validator is non-nil it runs on the decoded value.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	block := extractJSONBlock(StripCodeFences(raw))
	if block == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var result T
	if err := json.Unmarshal([]byte(normalizeLeadingDecimals(stripJSONComments(block))), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return result, nil
}

// StripCodeFences removes a leading ```/```json marker and a trailing ```
// marker from s. Text without fences is returned trimmed.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = openingFence.ReplaceAllString(s, "")
	s = closingFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// extractJSONBlock returns the first balanced {...} block in s, skipping
// braces that appear inside string literals.
func extractJSONBlock(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// stripJSONComments removes line and block comments that appear outside
// string values. Small models add them despite being told not to.
func stripJSONComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				i = len(s)
			} else {
				i += end + 3
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// normalizeLeadingDecimals rewrites numbers such as .8 and -.3 (which small
// models emit but JSON forbids) to 0.8 and -0.3. String contents are untouched.
func normalizeLeadingDecimals(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	inString, escaped := false, false
	var prev byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && c == '.' && i+1 < len(s) && isDigit(s[i+1]) && startsNumber(prev):
			b.WriteByte('0')
		}
		b.WriteByte(c)
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			prev = c
		}
	}
	return b.String()
}

func startsNumber(prev byte) bool {
	switch prev {
	case 0, ':', ',', '[', '{', '-':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
