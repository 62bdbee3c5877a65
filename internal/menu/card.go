package menu

import (
	"html/template"

	"mspro-labs/menuboard/internal/models"
)

// Options carries the display settings the transforms need.
type Options struct {
	Currency     string
	GravityUnit  string
	PendingLabel string
	Badges       Badges
}

// Card is the view model of one item card.
type Card struct {
	State        State
	ID           string
	Name         string
	Country      string
	Badge        template.HTML
	Specs        string
	Price        string
	PendingLabel string
}

// Pending reports whether the card shows the in-transit label instead of details.
func (c Card) Pending() bool {
	return c.State == StatePending
}

// BuildCard runs every transform over item.
func BuildCard(item models.Item, opts Options) Card {
	return Card{
		State:        Classify(item.InStockRaw),
		ID:           item.ID,
		Name:         item.Name,
		Country:      item.Country,
		Badge:        opts.Badges.Resolve(item.BeerType),
		Specs:        FormatSpecs(item.ABVRaw, item.GravityRaw, opts.GravityUnit),
		Price:        FormatPrice(item.BasePriceRaw, item.AvailabilityRaw, opts.Currency),
		PendingLabel: opts.PendingLabel,
	}
}
