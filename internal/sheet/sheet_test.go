package sheet

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"mspro-labs/menuboard/internal/models"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"  plain  ", "plain"},
		{`"quoted"`, "quoted"},
		{`"a""b"`, `a"b`},
		{`  " padded "  `, "padded"},
		{`""`, ""},
		{`"`, `"`},
		{`""double""`, `"double"`},
		{`say ""hi""`, `say "hi"`},
		{`"open`, `"open`},
	}

	for _, tc := range testCases {
		if got := Normalize(tc.input); got != tc.expected {
			t.Errorf("Normalize(%q): expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}

func TestNormalizeIdempotentWithoutQuotes(t *testing.T) {
	inputs := []string{"", "abc", "  leading", "trailing  ", " 1.Ратминское ", "\tbeertype=n/a\n"}
	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "input %q", s)
		assert.Equal(t, strings.TrimSpace(s), once, "input %q", s)
	}
}

func TestDelimiter(t *testing.T) {
	assert.Equal(t, ";", Delimiter("id;name"))
	assert.Equal(t, ",", Delimiter("id,name"))
	assert.Equal(t, ";", Delimiter("id,name;price"))
	assert.Equal(t, ",", Delimiter("id"))
}

func TestParseSemicolon(t *testing.T) {
	const csv = "\n  \"id\";\"название\";\"Страна\"\r\n1;\"Ратминское\";Россия\r\n2;Жигулёвское\n"

	got := Parse(csv)
	want := []models.RawRow{
		{"id": "1", "название": "Ратминское", "Страна": "Россия"},
		{"id": "2", "название": "Жигулёвское", "Страна": ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseComma(t *testing.T) {
	const csv = `id,name,note
3,"Porter ""Black""",extra,ignored`

	got := Parse(csv)
	want := []models.RawRow{
		{"id": "3", "name": `Porter "Black"`, "note": "extra"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSkipsBlankFirstColumn(t *testing.T) {
	const csv = `id,name
1,First
,Orphan
   ,Whitespace id
2,Second`

	rows := Parse(csv)
	if assert.Len(t, rows, 2) {
		assert.Equal(t, "First", rows[0]["name"])
		assert.Equal(t, "Second", rows[1]["name"])
	}
}

func TestParseQuotedDelimiterMisaligns(t *testing.T) {
	rows := Parse("id,name,country\n1,\"Smith, John\",UK")

	if assert.Len(t, rows, 1) {
		assert.Equal(t, `"Smith`, rows[0]["name"])
		assert.Equal(t, `John"`, rows[0]["country"])
	}
}

func TestParseEmpty(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("   \r\n  "))
	assert.Empty(t, Parse("id;name"))
}

func TestParseByteOrderMark(t *testing.T) {
	got := Parse("\ufeffid,name\n1,Porter\n")
	want := []models.RawRow{
		{"id": "1", "name": "Porter"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}
