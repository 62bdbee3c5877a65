package models

import "fmt"

// Field names a logical Item field. The values double as config keys.
type Field string

const (
	FieldID           Field = "id"
	FieldName         Field = "name"
	FieldCountry      Field = "country"
	FieldBeerType     Field = "beer_type"
	FieldABV          Field = "abv"
	FieldGravity      Field = "gravity"
	FieldBasePrice    Field = "base_price"
	FieldAvailability Field = "availability"
	FieldInStock      Field = "instock"
)

// Fields lists every logical field in display order.
var Fields = []Field{
	FieldID, FieldName, FieldCountry, FieldBeerType, FieldABV,
	FieldGravity, FieldBasePrice, FieldAvailability, FieldInStock,
}

// Columns holds, per field, the sheet headers to try in order.
type Columns map[Field][]string

// DefaultColumns returns the headers used by the published bar sheet.
func DefaultColumns() Columns {
	return Columns{
		FieldID:           {"id"},
		FieldName:         {"название", "Наименование"},
		FieldCountry:      {"Страна"},
		FieldBeerType:     {"beertype"},
		FieldABV:          {"крепость"},
		FieldGravity:      {"плотность"},
		FieldBasePrice:    {"Цена₽", "Цена"},
		FieldAvailability: {"наличие", "скидка"},
		FieldInStock:      {"instock"},
	}
}

// Lookup returns the first non-empty cell among the field's candidate headers.
func (c Columns) Lookup(row RawRow, f Field) string {
	for _, header := range c[f] {
		if v := row[header]; v != "" {
			return v
		}
	}
	return ""
}

// Merge returns a copy of c with the fields present in overrides replaced.
// Unknown field names are rejected.
func (c Columns) Merge(overrides map[string][]string) (Columns, error) {
	out := make(Columns, len(c))
	for f, headers := range c {
		out[f] = append([]string(nil), headers...)
	}
	for name, headers := range overrides {
		f := Field(name)
		if !f.Known() {
			return nil, fmt.Errorf("unknown column field %q", name)
		}
		if len(headers) == 0 {
			return nil, fmt.Errorf("column field %q has no headers", name)
		}
		out[f] = append([]string(nil), headers...)
	}
	return out, nil
}

// Known reports whether f is one of Fields.
func (f Field) Known() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}
