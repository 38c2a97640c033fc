// Package strutil holds small string helpers shared by the service.
package strutil

import (
	"strings"
)

// MaskSensitiveData hides most of a secret so it can be logged.
//
//	""            -> ""
//	"abc"         -> "***"
//	"abcdefgh"    -> "abcd***"
//	long values   -> first 4 + "***" + last 4
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}
	if len(data) <= 3 {
		return "***"
	}
	if len(data) <= 12 {
		return data[:4] + "***"
	}
	return data[:4] + "***" + data[len(data)-4:]
}

// SplitAndTrim splits s on sep, trims every token and drops the empty ones.
// It returns nil when nothing remains.
func SplitAndTrim(s, sep string) []string {
	tokens := strings.Split(s, sep)

	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token = strings.TrimSpace(token); token != "" {
			result = append(result, token)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
