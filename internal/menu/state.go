// Package menu holds the per-item transforms that turn a normalized sheet row
// into what a card shows, plus sorting and paging of the item list.
package menu

import "strings"

// State is the display category of an item.
type State string

const (
	StateInStock State = "instock"
	StateSale    State = "sale"
	StatePending State = "pending"
)

// Classify maps the free-text instock flag to a State.
// "sale" wins over "no", which wins over "yes"; anything else is in stock.
func Classify(flag string) State {
	v := strings.ToLower(flag)
	switch {
	case strings.Contains(v, "sale"):
		return StateSale
	case strings.Contains(v, "no"):
		return StatePending
	case strings.Contains(v, "yes"):
		return StateInStock
	default:
		return StateInStock
	}
}
