package util

import (
	"crypto/rand"
	"strings"
	"unicode"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

// GeneratePlanID returns a plan identifier of the form "pl-xxxxxxxx" using
// cryptographic randomness.
func GeneratePlanID() (string, error) {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	for i := range bytes {
		bytes[i] = alphanumeric[int(bytes[i])%len(alphanumeric)]
	}

	return "pl-" + string(bytes), nil
}

// Slugify converts a label into a lowercase key usable as an action type.
// Spaces, hyphens and underscores become underscores, accented vowels are
// folded, other characters are dropped, and repeated separators collapse.
func Slugify(s string) string {
	var result strings.Builder

	for _, r := range strings.ToLower(s) {
		if folded, ok := accentFold[r]; ok {
			r = folded
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '_' || r == '-' {
			result.WriteRune('_')
		}
	}

	str := result.String()
	for strings.Contains(str, "__") {
		str = strings.ReplaceAll(str, "__", "_")
	}

	return strings.Trim(str, "_")
}

var accentFold = map[rune]rune{
	'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u', 'ü': 'u', 'ñ': 'n',
}
