package ecb

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/wallet"
)

// sample is a shortened ECB csvdata export for the main refinancing
// operations rate.
const sample = `KEY,FREQ,CURRENCY,TIME_PERIOD,OBS_VALUE,OBS_STATUS
FM.B.U2.EUR.4F.KR.MRR_FR.LEV,B,EUR,2024-06-11,4.50,A
FM.B.U2.EUR.4F.KR.MRR_FR.LEV,B,EUR,2024-06-12,4.25,A
FM.B.U2.EUR.4F.KR.MRR_FR.LEV,B,EUR,2024-06-13,,M
FM.B.U2.EUR.4F.KR.MRR_FR.LEV,B,EUR,2024-06-14,4.25,A
`

func TestParseSeries(t *testing.T) {
	rates, err := parseSeries(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("parseSeries() unexpected error: %v", err)
	}

	// The empty June 13 observation must be skipped.
	if len(rates) != 3 {
		t.Fatalf("parsed %d rates, want 3", len(rates))
	}

	first := rates[0]
	if first.Year != 2024 || first.Month != time.June || first.Day != 11 {
		t.Errorf("first rate on %d-%v-%d, want 2024-June-11", first.Year, first.Month, first.Day)
	}
	if !first.Rate.Equal(wallet.Percent(4.5)) {
		t.Errorf("first rate = %v, want 4.5", first.Rate)
	}
	if !rates[1].Rate.Equal(wallet.Percent(4.25)) {
		t.Errorf("second rate = %v, want 4.25", rates[1].Rate)
	}
}

func TestParseSeriesMissingColumns(t *testing.T) {
	csv := "KEY,FREQ,DATE,VALUE\nx,B,2024-06-11,4.50\n"
	if _, err := parseSeries(strings.NewReader(csv)); err == nil {
		t.Error("expected an error when TIME_PERIOD or OBS_VALUE is absent")
	}
}

func TestParseSeriesBadDate(t *testing.T) {
	csv := "TIME_PERIOD,OBS_VALUE\n11/06/2024,4.50\n"
	if _, err := parseSeries(strings.NewReader(csv)); err == nil {
		t.Error("expected an error for an unparseable date")
	}
}
