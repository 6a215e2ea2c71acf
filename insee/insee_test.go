package insee

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/wallet"
)

// sample is a shortened INSEE monthly series CSV, semicolon separated,
// in the antechronological order the download uses.
const sample = `Libellé;Glissement annuel de l'indice des prix à la consommation;
idBank;001769682;
Dernière mise à jour;15/08/2025 08:45;
Période;Valeur;Code
2025-07;0.9;A
2025-06;0.8;A
2025-05;;P
2025-04;0.7;A
`

func TestParseSeries(t *testing.T) {
	series, err := parseSeries(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("parseSeries() unexpected error: %v", err)
	}

	if series.IDBank != "001769682" {
		t.Errorf("idBank = %q, want 001769682", series.IDBank)
	}
	if want := time.Date(2025, 8, 15, 8, 45, 0, 0, time.UTC); !series.LastUpdate.Equal(want) {
		t.Errorf("last update = %v, want %v", series.LastUpdate, want)
	}

	// The May row has no value yet and must be skipped.
	if len(series.Values) != 3 {
		t.Fatalf("parsed %d values, want 3", len(series.Values))
	}
	first := series.Values[0]
	if first.Year != 2025 || first.Month != time.July {
		t.Errorf("first value on %d-%v, want 2025-July", first.Year, first.Month)
	}
	if !first.Rate.Equal(wallet.Percent(0.9)) {
		t.Errorf("first rate = %v, want 0.9", first.Rate)
	}
}

func TestParseSeriesTooShort(t *testing.T) {
	if _, err := parseSeries(strings.NewReader("a;b\nc;d\n")); err == nil {
		t.Error("expected an error for a truncated series file")
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input string
		year  int
		month time.Month
		err   bool
	}{
		{input: "2025-08", year: 2025, month: time.August},
		{input: "2024-1", year: 2024, month: time.January},
		{input: "2024-13", err: true},
		{input: "2024", err: true},
		{input: "08-2024-01", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			year, month, err := parseMonth(tt.input)
			if tt.err {
				if err == nil {
					t.Errorf("parseMonth(%q) expected an error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseMonth(%q) unexpected error: %v", tt.input, err)
			}
			if year != tt.year || month != tt.month {
				t.Errorf("parseMonth(%q) = %d, %v, want %d, %v", tt.input, year, month, tt.year, tt.month)
			}
		})
	}
}
