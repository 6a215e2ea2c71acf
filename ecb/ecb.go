// Package ecb fetches the European Central Bank reference rate (the main
// refinancing operations rate) from the ECB data portal.
package ecb

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/etnz/wallet"
)

// seriesKey identifies the main refinancing operations rate (level, daily)
// in the ECB data portal.
const seriesKey = "FM/B.U2.EUR.4F.KR.MRR_FR.LEV"

// FetchReferenceRates downloads and parses the ECB reference-rate series over
// the given date range, sorted ascending by date.
func FetchReferenceRates(r wallet.Range) ([]wallet.DailyRate, error) {
	url := fmt.Sprintf("https://data-api.ecb.europa.eu/service/data/%s?format=csvdata&startPeriod=%s&endPeriod=%s",
		seriesKey, r.From, r.To)
	log.Println("Downloading from ECB:", url)

	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download from ECB: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download from ECB: received status %s", resp.Status)
	}
	return parseSeries(resp.Body)
}

// parseSeries reads the ECB csvdata format: a header row, then one
// observation per row with TIME_PERIOD and OBS_VALUE columns. Rows come out
// of the portal already sorted by date.
func parseSeries(r io.Reader) ([]wallet.DailyRate, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("empty csv from ECB")
	}

	// locate the two columns of interest in the header.
	timeCol, valueCol := -1, -1
	for i, name := range records[0] {
		switch name {
		case "TIME_PERIOD":
			timeCol = i
		case "OBS_VALUE":
			valueCol = i
		}
	}
	if timeCol < 0 || valueCol < 0 {
		return nil, fmt.Errorf("csv from ECB misses TIME_PERIOD or OBS_VALUE columns")
	}

	var rates []wallet.DailyRate
	for _, record := range records[1:] {
		if len(record) <= timeCol || len(record) <= valueCol || record[valueCol] == "" {
			continue
		}
		on, err := time.Parse("2006-01-02", record[timeCol])
		if err != nil {
			return nil, fmt.Errorf("failed to parse date %q: %w", record[timeCol], err)
		}
		val, err := strconv.ParseFloat(record[valueCol], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %q for date %q: %w", record[valueCol], record[timeCol], err)
		}
		rates = append(rates, wallet.DailyRate{
			Year:  on.Year(),
			Month: on.Month(),
			Day:   on.Day(),
			Rate:  wallet.Percent(val),
		})
	}
	return rates, nil
}
