// Package insee fetches monthly inflation-rate series from INSEE, the French
// national statistics institute.
package insee

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/wallet"
)

// DefaultSeriesID is the INSEE series for the year-on-year variation of the
// consumer price index, the usual "inflation rate" figure.
const DefaultSeriesID = "001769682"

// FetchInflation downloads and parses an INSEE monthly series over the given
// date range, sorted ascending by (year, month).
func FetchInflation(idBank string, r wallet.Range) ([]wallet.MonthlyRate, error) {
	series, err := getSeries(idBank, r.From, r.To)
	if err != nil {
		return nil, fmt.Errorf("failed to get series for INSEE ID %s: %w", idBank, err)
	}

	rates := make([]wallet.MonthlyRate, 0, len(series.Values))
	for _, v := range series.Values {
		rates = append(rates, v)
	}
	slices.SortFunc(rates, func(a, b wallet.MonthlyRate) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return int(a.Month - b.Month)
	})
	return rates, nil
}

// getSeries constructs the URL, downloads, and parses an INSEE time series.
func getSeries(idBank string, from, to wallet.Date) (*Series, error) {
	startQuarter := (from.Month()-1)/3 + 1
	endQuarter := (to.Month()-1)/3 + 1

	url := fmt.Sprintf("https://bdm.insee.fr/series/%s/csv?lang=fr&ordre=antechronologique&transposition=donneescolonne&periodeDebut=%d&anneeDebut=%d&periodeFin=%d&anneeFin=%d&revision=sansrevisions",
		idBank,
		startQuarter,
		from.Year(),
		endQuarter,
		to.Year(),
	)
	log.Println("Downloading from INSEE:", url)

	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download from INSEE for ID %s: %w", idBank, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download from INSEE for ID %s: received status %s", idBank, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	zipReader, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to open zip archive from INSEE response: %w", err)
	}

	var foundFiles []string
	for _, f := range zipReader.File {
		filename := f.Name
		foundFiles = append(foundFiles, filename)
		if filename == "valeurs_mensuelles.csv" {
			log.Println("Found", filename)
			csvFile, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("failed to open '%s' from zip archive: %w", filename, err)
			}
			defer csvFile.Close()
			return parseSeries(csvFile)
		}
	}

	return nil, fmt.Errorf("could not find a monthly values file in downloaded zip file for ID %s (found: %s)", idBank, strings.Join(foundFiles, ", "))
}

// Series holds the data from an INSEE time series CSV file.
type Series struct {
	Libelle    string
	IDBank     string
	LastUpdate time.Time
	Values     []wallet.MonthlyRate
}

// parseMonth parses a string like "2025-08" into a year and a month.
func parseMonth(s string) (int, time.Month, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unrecognized insee date format: %q", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in monthly date %q: %w", s, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month in monthly date %q: %w", s, err)
	}
	return year, time.Month(month), nil
}

// parseSeries reads the INSEE CSV format from an io.Reader.
func parseSeries(r io.Reader) (*Series, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	if len(records) < 4 {
		return nil, fmt.Errorf("not enough records in csv to parse series")
	}

	series := &Series{
		Libelle: records[0][1],
		IDBank:  records[1][1],
	}

	series.LastUpdate, err = time.Parse("02/01/2006 15:04", records[2][1])
	if err != nil {
		return nil, fmt.Errorf("failed to parse last update date %q: %w", records[2][1], err)
	}

	for i := 4; i < len(records); i++ {
		if len(records[i]) > 1 && records[i][1] != "" {
			year, month, err := parseMonth(records[i][0])
			if err != nil {
				// Don't wrap, parseMonth provides good context
				return nil, err
			}
			val, err := strconv.ParseFloat(records[i][1], 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse value %q for date %q: %w", records[i][1], records[i][0], err)
			}
			series.Values = append(series.Values, wallet.MonthlyRate{Year: year, Month: month, Rate: wallet.Percent(val)})
		}
	}
	return series, nil
}
