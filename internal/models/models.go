package models

// RawRow is one parsed data row: header name -> normalized cell text.
type RawRow map[string]string

// Item holds the normalized fields of a single menu row.
// Every field is a plain string; a missing column and an empty cell look the same.
type Item struct {
	ID              string
	Name            string
	Country         string
	BeerType        string
	ABVRaw          string
	GravityRaw      string
	BasePriceRaw    string
	AvailabilityRaw string
	InStockRaw      string
}

// Entry is one slot on a rendered screen: either an Item or an OrderPlaceholder.
type Entry interface {
	isEntry()
}

// OrderPlaceholder is the synthetic trailing card on the last screen.
type OrderPlaceholder struct{}

func (Item) isEntry()             {}
func (OrderPlaceholder) isEntry() {}

// ItemFromRow maps a row onto an Item using the candidate columns for each field.
func ItemFromRow(row RawRow, cols Columns) Item {
	return Item{
		ID:              cols.Lookup(row, FieldID),
		Name:            cols.Lookup(row, FieldName),
		Country:         cols.Lookup(row, FieldCountry),
		BeerType:        cols.Lookup(row, FieldBeerType),
		ABVRaw:          cols.Lookup(row, FieldABV),
		GravityRaw:      cols.Lookup(row, FieldGravity),
		BasePriceRaw:    cols.Lookup(row, FieldBasePrice),
		AvailabilityRaw: cols.Lookup(row, FieldAvailability),
		InStockRaw:      cols.Lookup(row, FieldInStock),
	}
}

// ItemsFromRows converts every row, keeping sheet order.
func ItemsFromRows(rows []RawRow, cols Columns) []Item {
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, ItemFromRow(row, cols))
	}
	return items
}
