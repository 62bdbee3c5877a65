package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFallsBackInOrder(t *testing.T) {
	cols := DefaultColumns()

	row := RawRow{"Цена₽": "", "Цена": "250"}
	assert.Equal(t, "250", cols.Lookup(row, FieldBasePrice))

	row = RawRow{"Цена₽": "300", "Цена": "250"}
	assert.Equal(t, "300", cols.Lookup(row, FieldBasePrice))

	assert.Equal(t, "", cols.Lookup(RawRow{}, FieldBasePrice))
}

func TestItemFromRow(t *testing.T) {
	row := RawRow{
		"id":           "7",
		"название":     "",
		"Наименование": "7.Ратминское",
		"Страна":       "Россия",
		"beertype":     "beertype=light",
		"крепость":     "45",
		"плотность":    "12",
		"Цена":         "250",
		"instock":      "yes",
	}

	item := ItemFromRow(row, DefaultColumns())

	assert.Equal(t, Item{
		ID:           "7",
		Name:         "7.Ратминское",
		Country:      "Россия",
		BeerType:     "beertype=light",
		ABVRaw:       "45",
		GravityRaw:   "12",
		BasePriceRaw: "250",
		InStockRaw:   "yes",
	}, item)
}

func TestMergeColumns(t *testing.T) {
	base := DefaultColumns()

	merged, err := base.Merge(map[string][]string{"name": {"Title"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Title"}, merged[FieldName])
	assert.Equal(t, base[FieldID], merged[FieldID])
	// base is untouched
	assert.Equal(t, []string{"название", "Наименование"}, base[FieldName])

	_, err = base.Merge(map[string][]string{"colour": {"x"}})
	assert.Error(t, err)

	_, err = base.Merge(map[string][]string{"name": nil})
	assert.Error(t, err)
}

func TestEntryVariants(t *testing.T) {
	entries := []Entry{Item{ID: "1"}, OrderPlaceholder{}}

	var items, placeholders int
	for _, e := range entries {
		switch e.(type) {
		case Item:
			items++
		case OrderPlaceholder:
			placeholders++
		}
	}
	assert.Equal(t, 1, items)
	assert.Equal(t, 1, placeholders)
}
