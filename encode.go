package wallet

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// investmentCmd is a specialized struct for decoding json: the purchase and
// method fields are tagged unions and need a two-step decode.
type investmentCmd struct {
	ID                  string              `json:"id"`
	Version             int                 `json:"version"`
	Name                string              `json:"name"`
	Start               Date                `json:"startDate"`
	End                 Date                `json:"endDate"`
	Purchase            json.RawMessage     `json:"purchase"`
	Method              json.RawMessage     `json:"valueCalculationMethod"`
	InterestPeriods     []InterestPeriod    `json:"interestPeriods"`
	Capitalization      bool                `json:"capitalization"`
	IncomeTaxApplicable bool                `json:"incomeTaxApplicable"`
	Cancellation        *CancellationPolicy `json:"cancellationPolicy"`
	TargetCurrencies    []Allocation        `json:"targetCurrencies"`
	TargetIndustries    []Allocation        `json:"targetIndustries"`
	TargetWorldAreas    []Allocation        `json:"targetWorldAreas"`
}

func (c investmentCmd) investment() (*Investment, error) {
	purchase, err := DecodePurchase(c.Purchase)
	if err != nil {
		return nil, fmt.Errorf("investment %q: %w", c.ID, err)
	}
	method, err := DecodeMethod(c.Method)
	if err != nil {
		return nil, fmt.Errorf("investment %q: %w", c.ID, err)
	}
	return &Investment{
		ID:                  c.ID,
		Version:             c.Version,
		Name:                c.Name,
		Start:               c.Start,
		End:                 c.End,
		Purchase:            purchase,
		Method:              method,
		InterestPeriods:     c.InterestPeriods,
		Capitalization:      c.Capitalization,
		IncomeTaxApplicable: c.IncomeTaxApplicable,
		Cancellation:        c.Cancellation,
		TargetCurrencies:    c.TargetCurrencies,
		TargetIndustries:    c.TargetIndustries,
		TargetWorldAreas:    c.TargetWorldAreas,
	}, nil
}

// DecodeInvestments decodes investments from a stream of JSONL data, one
// investment per line.
func DecodeInvestments(r io.Reader) ([]*Investment, error) {
	var invs []*Investment
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue // Skip empty lines
		}
		var cmd investmentCmd
		if err := json.Unmarshal(lineBytes, &cmd); err != nil {
			return nil, fmt.Errorf("could not decode investment line %q: %w", string(lineBytes), err)
		}
		inv, err := cmd.investment()
		if err != nil {
			return nil, err
		}
		invs = append(invs, inv)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read investments: %w", err)
	}
	return invs, nil
}

// EncodeInvestment appends a single investment as one canonical JSONL line.
func EncodeInvestment(w io.Writer, inv *Investment) error {
	line, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("could not encode investment %q: %w", inv.ID, err)
	}
	if _, err := w.Write(append(line, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodeInvestments writes all investments in canonical form: one JSONL line
// each, sorted by id.
func EncodeInvestments(w io.Writer, invs []*Investment) error {
	sorted := slices.Clone(invs)
	slices.SortFunc(sorted, func(a, b *Investment) int { return strings.Compare(a.ID, b.ID) })
	for _, inv := range sorted {
		if err := EncodeInvestment(w, inv); err != nil {
			return err
		}
	}
	return nil
}

// DecodeWallets decodes wallets from a stream of JSONL data.
func DecodeWallets(r io.Reader) ([]*Wallet, error) {
	var wallets []*Wallet
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}
		w := new(Wallet)
		if err := json.Unmarshal(lineBytes, w); err != nil {
			return nil, fmt.Errorf("could not decode wallet line %q: %w", string(lineBytes), err)
		}
		wallets = append(wallets, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read wallets: %w", err)
	}
	return wallets, nil
}

// EncodeWallets writes all wallets as JSONL sorted by id.
func EncodeWallets(w io.Writer, wallets []*Wallet) error {
	sorted := slices.Clone(wallets)
	slices.SortFunc(sorted, func(a, b *Wallet) int { return strings.Compare(a.ID, b.ID) })
	for _, wal := range sorted {
		line, err := json.Marshal(wal)
		if err != nil {
			return fmt.Errorf("could not encode wallet %q: %w", wal.ID, err)
		}
		if _, err := w.Write(append(line, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSettings decodes the user settings JSON document.
func DecodeSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("could not decode settings: %w", err)
	}
	return s, nil
}

// EncodeSettings writes the user settings as an indented JSON document.
func EncodeSettings(w io.Writer, s Settings) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// DecodeExternalData decodes a cached external data snapshot.
func DecodeExternalData(r io.Reader) (*ExternalData, error) {
	data := new(ExternalData)
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return nil, fmt.Errorf("could not decode external data: %w", err)
	}
	return data, nil
}

// EncodeExternalData writes the external data snapshot as an indented JSON
// document.
func EncodeExternalData(w io.Writer, data *ExternalData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
