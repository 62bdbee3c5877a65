package sheet

import "strings"

// Normalize trims a raw cell, drops one enclosing pair of double quotes and
// collapses doubled quotes ("") to a single one.
func Normalize(value string) string {
	s := strings.TrimSpace(value)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, `""`, `"`)
	return strings.TrimSpace(s)
}
