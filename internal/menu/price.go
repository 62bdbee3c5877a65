package menu

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	rePrice       = regexp.MustCompile(`[^\d\.]+`)
	rePriceNumber = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)`)
	reDiscount    = regexp.MustCompile(`(\d+)[\s\p{Zs}]*%`)
)

// ParsePrice cleans a raw price cell ("150,50руб") and returns the leading
// decimal number. ok is false when no digits survive the cleaning.
func ParsePrice(raw string) (float64, bool) {
	cleaned := strings.Replace(raw, ",", ".", 1)
	cleaned = rePrice.ReplaceAllString(cleaned, "")
	num := rePriceNumber.FindString(cleaned)
	if num == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

// Discount extracts the first "<digits>%" from the availability text, clamped to 0..100.
// No-break spaces before the sign count as whitespace.
func Discount(availability string) int {
	m := reDiscount.FindStringSubmatch(strings.ToLower(availability))
	if m == nil {
		return 0
	}
	pct, err := strconv.Atoi(m[1])
	if err != nil || pct > 100 {
		// overflow on absurdly long digit runs lands here too
		return 100
	}
	return pct
}

// FinalPrice applies the discount and rounds half away from zero.
func FinalPrice(baseRaw, availability string) (int64, bool) {
	base, ok := ParsePrice(baseRaw)
	if !ok {
		return 0, false
	}
	pct := Discount(availability)
	return int64(math.Round(base * (1 - float64(pct)/100))), true
}

// FormatPrice renders the final price with the currency suffix, or "" when there is no price.
func FormatPrice(baseRaw, availability, currency string) string {
	final, ok := FinalPrice(baseRaw, availability)
	if !ok {
		return ""
	}
	return strconv.FormatInt(final, 10) + currency
}
