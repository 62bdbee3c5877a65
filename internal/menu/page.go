package menu

import (
	"errors"
	"slices"

	"mspro-labs/menuboard/internal/models"
)

var (
	ErrInvalidScreen   = errors.New("screen number must be positive")
	ErrInvalidPageSize = errors.New("items per screen must be positive")
)

// Page is one screen of the menu.
type Page struct {
	Screen       int
	TotalScreens int
	TotalItems   int
	Entries      []models.Entry
}

// Last reports whether this is the final screen.
func (p Page) Last() bool {
	return p.TotalScreens > 0 && p.Screen == p.TotalScreens
}

// SortByID orders items by numeric id. Blank and non-numeric ids go last;
// the sort is stable so ties keep sheet order.
func SortByID(items []models.Item) {
	slices.SortStableFunc(items, func(a, b models.Item) int {
		av, aok := number(a.ID)
		bv, bok := number(b.ID)
		switch {
		case aok && bok:
			if av < bv {
				return -1
			}
			if av > bv {
				return 1
			}
			return 0
		case aok:
			return -1
		case bok:
			return 1
		default:
			return 0
		}
	})
}

// TotalScreens is ceil(count / size).
func TotalScreens(count, size int) int {
	if size < 1 || count < 1 {
		return 0
	}
	return (count + size - 1) / size
}

// Paginate returns the given 1-based screen of items, which must already be sorted.
// The last screen gets an OrderPlaceholder appended.
func Paginate(items []models.Item, screen, size int) (Page, error) {
	if size < 1 {
		return Page{}, ErrInvalidPageSize
	}
	if screen < 1 {
		return Page{}, ErrInvalidScreen
	}

	total := TotalScreens(len(items), size)
	start := min((screen-1)*size, len(items))
	end := min(start+size, len(items))

	entries := make([]models.Entry, 0, end-start+1)
	for _, item := range items[start:end] {
		entries = append(entries, item)
	}

	page := Page{
		Screen:       screen,
		TotalScreens: total,
		TotalItems:   len(items),
	}
	if page.Last() {
		entries = append(entries, models.OrderPlaceholder{})
	}
	page.Entries = entries
	return page, nil
}
