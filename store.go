package expense

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/renameio/v2"
)

// StoreFileName is the name of the store document in the user's home directory.
const StoreFileName = ".expense_tracker.json"

// DefaultStorePath returns the default location of the store document.
func DefaultStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate home directory: %w", err)
	}
	return filepath.Join(home, StoreFileName), nil
}

// Store persists a Ledger as a single JSON document.
//
// The whole document is read by Load and rewritten by Save. There is no
// locking: two processes saving the same store race and the last one wins.
type Store struct {
	path   string
	Logger *log.Logger // diagnostics, log.Default() if nil
}

// NewStore returns a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the store document.
func (s *Store) Path() string { return s.path }

func (s *Store) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

// Load reads the ledger from the store document.
//
// A missing document is not an error, it yields an empty ledger. A document
// that cannot be decoded yields an empty ledger and an error wrapping
// ErrStoreCorrupt, so callers can report it and carry on.
func (s *Store) Load() (*Ledger, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger().Debug("store does not exist, starting with an empty ledger", "path", s.path)
		return NewLedger(), nil
	}
	if err != nil {
		return NewLedger(), fmt.Errorf("cannot read store %q: %w", s.path, err)
	}

	ledger, err := DecodeLedger(bytes.NewReader(data))
	if err != nil {
		s.logger().Warn("store cannot be decoded", "path", s.path, "err", err)
		return NewLedger(), err
	}
	s.logger().Debug("store loaded", "path", s.path, "expenses", ledger.Len())
	return ledger, nil
}

// Save replaces the store document with the ledger content.
//
// The document is written to a temporary file and renamed over the previous
// one, so a reader sees either the old or the new content. The file is only
// accessible to its owner.
func (s *Store) Save(l *Ledger) error {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		return err
	}
	if err := renameio.WriteFile(s.path, buf.Bytes(), 0o600, renameio.WithStaticPermissions(0o600)); err != nil {
		return fmt.Errorf("cannot save store %q: %w", s.path, err)
	}
	s.logger().Debug("store saved", "path", s.path, "expenses", l.Len())
	return nil
}

// DecodeLedger decodes a store document: a JSON array of expenses.
// Any decoding failure is reported as ErrStoreCorrupt.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	var expenses []Expense
	if err := json.Unmarshal(data, &expenses); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreCorrupt, err)
	}
	return NewLedger(expenses...), nil
}

// EncodeLedger writes the ledger as a store document: an indented JSON array
// of expenses in ledger order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	expenses := l.expenses
	if expenses == nil {
		expenses = []Expense{}
	}
	data, err := json.MarshalIndent(expenses, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}
