package wallet

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Store file names inside the wallet directory.
const (
	investmentsFile  = "investments.jsonl"
	walletsFile      = "wallets.jsonl"
	settingsFile     = "settings.json"
	externalDataFile = "external.json"
)

// Store is the local wallet directory: investments and wallets as JSONL,
// settings and the cached external data snapshot as JSON.
type Store struct {
	dir string
}

// DefaultStorePath returns the wallet directory: the WALLET_DIR environment
// variable when set, the current directory otherwise.
func DefaultStorePath() string {
	if dir := os.Getenv("WALLET_DIR"); dir != "" {
		return dir
	}
	return "."
}

// OpenStore opens (creating if needed) the wallet directory.
func OpenStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not open wallet directory %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(file string) string { return filepath.Join(s.dir, file) }

// Investments loads all investments. A missing file is an empty wallet
// directory, not an error.
func (s *Store) Investments() ([]*Investment, error) {
	f, err := os.Open(s.path(investmentsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", s.path(investmentsFile), err)
	}
	defer f.Close()
	return DecodeInvestments(f)
}

// Investment returns the investment with the given id.
func (s *Store) Investment(id string) (*Investment, error) {
	invs, err := s.Investments()
	if err != nil {
		return nil, err
	}
	for _, inv := range invs {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, fmt.Errorf("unknown investment %q", id)
}

// SaveInvestment inserts or replaces an investment and rewrites the file in
// canonical form. The stored version is bumped on every save, so concurrent
// edits of the same record are detectable.
func (s *Store) SaveInvestment(inv *Investment) error {
	if err := inv.Validate(); err != nil {
		return fmt.Errorf("invalid investment %q: %w", inv.ID, err)
	}
	invs, err := s.Investments()
	if err != nil {
		return err
	}
	replaced := false
	for i, existing := range invs {
		if existing.ID == inv.ID {
			inv.Version = existing.Version + 1
			invs[i] = inv
			replaced = true
			break
		}
	}
	if !replaced {
		inv.Version = 1
		invs = append(invs, inv)
	}
	return s.writeInvestments(invs)
}

// writeInvestments rewrites the investments file in canonical form.
func (s *Store) writeInvestments(invs []*Investment) error {
	f, err := os.Create(s.path(investmentsFile))
	if err != nil {
		return fmt.Errorf("could not write %q: %w", s.path(investmentsFile), err)
	}
	defer f.Close()
	return EncodeInvestments(f, invs)
}

// Fmt validates and rewrites the investments file in canonical form.
func (s *Store) Fmt() error {
	invs, err := s.Investments()
	if err != nil {
		return err
	}
	for _, inv := range invs {
		if err := inv.Validate(); err != nil {
			return fmt.Errorf("invalid investment %q: %w", inv.ID, err)
		}
	}
	return s.writeInvestments(invs)
}

// Wallets loads all wallets.
func (s *Store) Wallets() ([]*Wallet, error) {
	f, err := os.Open(s.path(walletsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", s.path(walletsFile), err)
	}
	defer f.Close()
	return DecodeWallets(f)
}

// SaveWallet inserts or replaces a wallet.
func (s *Store) SaveWallet(w *Wallet) error {
	wallets, err := s.Wallets()
	if err != nil {
		return err
	}
	replaced := false
	for i, existing := range wallets {
		if existing.ID == w.ID {
			wallets[i] = w
			replaced = true
			break
		}
	}
	if !replaced {
		wallets = append(wallets, w)
	}
	f, err := os.Create(s.path(walletsFile))
	if err != nil {
		return fmt.Errorf("could not write %q: %w", s.path(walletsFile), err)
	}
	defer f.Close()
	return EncodeWallets(f, wallets)
}

// Settings loads the user settings, falling back to defaults when none were
// saved yet.
func (s *Store) Settings() (Settings, error) {
	f, err := os.Open(s.path(settingsFile))
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("no settings file, using defaults")
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("could not open %q: %w", s.path(settingsFile), err)
	}
	defer f.Close()
	return DecodeSettings(f)
}

// SaveSettings writes the user settings.
func (s *Store) SaveSettings(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	f, err := os.Create(s.path(settingsFile))
	if err != nil {
		return fmt.Errorf("could not write %q: %w", s.path(settingsFile), err)
	}
	defer f.Close()
	return EncodeSettings(f, settings)
}

// ExternalData loads the cached external data snapshot. When none exists an
// empty snapshot is returned: every lookup on it reports unavailable.
func (s *Store) ExternalData() (*ExternalData, error) {
	f, err := os.Open(s.path(externalDataFile))
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("no external data snapshot, run 'wlt update' to fetch one")
		return &ExternalData{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", s.path(externalDataFile), err)
	}
	defer f.Close()
	return DecodeExternalData(f)
}

// SaveExternalData caches an external data snapshot.
func (s *Store) SaveExternalData(data *ExternalData) error {
	f, err := os.Create(s.path(externalDataFile))
	if err != nil {
		return fmt.Errorf("could not write %q: %w", s.path(externalDataFile), err)
	}
	defer f.Close()
	return EncodeExternalData(f, data)
}
