package sheet

import (
	"strings"
	"testing"
)

func TestWriteTSV(t *testing.T) {
	expected := `Nr	Artikel	E-Mail	Datum	Leistung	Preis	Gebühr	Beschreibung
1	Gitarre	band@example.com	01.01.2024	Probe	120.00		
2	Bass	bass@example.com	01.01.2024, 15.01.2024	Aufnahme	250.00	50	Studio Session
`

	var f strings.Builder
	var rows = [][]string{
		{"Nr", "Artikel", "E-Mail", "Datum", "Leistung", "Preis", "Gebühr", "Beschreibung"},
		{"1", "Gitarre", "band@example.com", "01.01.2024", "Probe", "120.00"},
		{"2", "Bass", "bass@example.com", "01.01.2024, 15.01.2024", "Aufnahme", "250.00", "50", "Studio Session"},
	}

	if err := WriteTSV(&f, rows); err != nil {
		t.Fatalf("Unexpected error returned from WriteTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestWriteTSVWithBlankRows(t *testing.T) {
	expected := `Nr	Artikel
1	Gitarre
3	Bass
`

	var f strings.Builder
	var rows = [][]string{
		{"Nr", "Artikel"},
		{"1", "Gitarre"},
		{},
		{" ", ""},
		{"3", "Bass"},
	}

	if err := WriteTSV(&f, rows); err != nil {
		t.Fatalf("Unexpected error returned from WriteTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestWriteTSVWithEmptySheet(t *testing.T) {
	var f strings.Builder

	if err := WriteTSV(&f, [][]string{}); err == nil {
		t.Fatalf("Expected error return for empty sheet, got %v", err)
	}
}

func TestWriteTSVWithoutHeaders(t *testing.T) {
	var f strings.Builder

	if err := WriteTSV(&f, [][]string{{}}); err == nil {
		t.Fatalf("Expected error return for missing headers, got %v", err)
	}
}
