package menu

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// number coerces a cell to a finite float. Blank and garbage are not numbers.
func number(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FormatSpecs builds "4.2% 12°P" from the strength cell (tenths of a percent)
// and the gravity cell. Zero or unparseable values are left out.
func FormatSpecs(abvRaw, gravityRaw, gravityUnit string) string {
	var parts []string
	if abv, ok := number(abvRaw); ok && abv != 0 {
		parts = append(parts, fmt.Sprintf("%.1f%%", abv/10))
	}
	if og, ok := number(gravityRaw); ok && og != 0 {
		parts = append(parts, strconv.FormatFloat(og, 'f', -1, 64)+gravityUnit)
	}
	return strings.Join(parts, " ")
}
