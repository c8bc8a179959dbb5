package nlp

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/learner/internal/domain"
)

const (
	DefaultMinutes = 30
	MinMinutes     = 10
	MaxMinutes     = 180

	DefaultCount = 5
	MinCount     = 1
	MaxCount     = 20
)

// ValidateMinutes coerces v to a session length in [MinMinutes, MaxMinutes].
// Values that are not integer-like become DefaultMinutes.
func ValidateMinutes(v any) int {
	return clamp(toInt(v, DefaultMinutes), MinMinutes, MaxMinutes)
}

// ValidateCount coerces v to a question count in [MinCount, MaxCount].
// Values that are not integer-like become DefaultCount.
func ValidateCount(v any) int {
	return clamp(toInt(v, DefaultCount), MinCount, MaxCount)
}

// ValidateSessionType matches v case-insensitively against the known
// session types. Anything else, including non-strings, yields the default.
func ValidateSessionType(v any) domain.SessionType {
	s, ok := v.(string)
	if !ok {
		return domain.DefaultSessionType
	}
	if st, ok := domain.ParseSessionType(s); ok {
		return st
	}
	return domain.DefaultSessionType
}

// toInt converts JSON-ish values to int, truncating fractions.
func toInt(v any, def int) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return floatToInt(float64(n), def)
	case float32:
		return floatToInt(float64(n), def)
	case float64:
		return floatToInt(n, def)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return floatToInt(float64(i), def)
		}
		return def
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return def
		}
		return i
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return def
	}
}

func floatToInt(f float64, def int) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	// Anything this large clamps identically; the bound keeps int() defined.
	f = math.Max(math.Min(f, math.MaxInt32), math.MinInt32)
	return int(f)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// freeText returns params[key] when it is a usable string, then the first
// capture of the first matching pattern against text, then fallback.
func freeText(params map[string]any, key, text string, patterns []*regexp.Regexp, fallback string) string {
	if s, ok := params[key].(string); ok {
		if clean, err := Sanitize(s); err == nil {
			if clean = trimQuestion(clean); clean != "" {
				return clean
			}
		}
	}
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if s := trimQuestion(m[1]); s != "" {
				return s
			}
		}
	}
	return fallback
}

// trimQuestion drops trailing question marks and surrounding space, so "?"
// alone yields "".
func trimQuestion(s string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), "?"))
}
