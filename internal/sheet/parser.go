// Package sheet turns the published spreadsheet export into header-keyed rows.
//
// The format is deliberately naive: one delimiter for the whole document,
// picked from the header line, and no support for delimiters inside quoted
// cells. Such rows come out misaligned rather than failing.
package sheet

import (
	"regexp"
	"strings"
	"unicode"

	"mspro-labs/menuboard/internal/models"
)

var reLineBreak = regexp.MustCompile(`\r?\n`)

// Delimiter picks ';' when the header line contains one, ',' otherwise.
func Delimiter(headerLine string) string {
	if strings.Contains(headerLine, ";") {
		return ";"
	}
	return ","
}

// Parse splits text into rows keyed by the normalized header names.
// Rows whose first column is blank are dropped; short rows are padded with "".
func Parse(text string) []models.RawRow {
	text = strings.TrimFunc(text, isBlank)
	if text == "" {
		return nil
	}

	lines := reLineBreak.Split(text, -1)
	delim := Delimiter(lines[0])

	rawHeaders := strings.Split(lines[0], delim)
	headers := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		headers[i] = Normalize(h)
	}

	rows := make([]models.RawRow, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cells := strings.Split(line, delim)
		if strings.TrimSpace(cells[0]) == "" {
			continue
		}

		row := make(models.RawRow, len(headers))
		for i, h := range headers {
			var cell string
			if i < len(cells) {
				cell = cells[i]
			}
			row[h] = Normalize(cell)
		}
		rows = append(rows, row)
	}
	return rows
}

// isBlank also treats a byte order mark as whitespace, so BOM-prefixed
// exports keep their first header intact.
func isBlank(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}
