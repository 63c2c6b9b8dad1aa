package expense

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// this file contains functions to export a ledger for other tools.
// Exports always use the raw stored values: no currency symbol, no truncation.

// ExportFormat selects the encoding of an export.
type ExportFormat string

const (
	CSV  ExportFormat = "csv"
	JSON ExportFormat = "json"
	YAML ExportFormat = "yaml"
)

// ExportFormats lists the supported export formats.
var ExportFormats = []ExportFormat{CSV, JSON, YAML}

// ParseExportFormat parses an export format name, case insensitive.
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(s))
	switch f {
	case CSV, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q, want one of %v", s, ExportFormats)
	}
}

// csvHeader is the header row of a CSV export, in record field order.
var csvHeader = []string{"id", "date", "description", "amount"}

// ExportCSV writes the ledger as CSV: a header row followed by one row per
// expense in ledger order. Lines end with CRLF and fields containing the
// delimiter are quoted.
func ExportCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range l.expenses {
		row := []string{
			strconv.Itoa(e.ID),
			e.Date,
			e.Description,
			e.Amount.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportJSON writes the ledger in the store document format.
func ExportJSON(w io.Writer, l *Ledger) error { return EncodeLedger(w, l) }

// yamlAmount renders a decimal as a plain YAML number.
type yamlAmount decimal.Decimal

func (a yamlAmount) MarshalYAML() (any, error) {
	d := decimal.Decimal(a)
	tag := "!!float"
	if d.IsInteger() {
		tag = "!!int"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: d.String()}, nil
}

// ExportYAML writes the ledger as a YAML sequence of expenses.
func ExportYAML(w io.Writer, l *Ledger) error {
	type yexpense struct {
		ID          int        `yaml:"id"`
		Date        string     `yaml:"date"`
		Description string     `yaml:"description"`
		Amount      yamlAmount `yaml:"amount"`
	}
	list := make([]yexpense, 0, len(l.expenses))
	for _, e := range l.expenses {
		list = append(list, yexpense{e.ID, e.Date, e.Description, yamlAmount(e.Amount)})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(list); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

// Export writes the ledger to w in the given format.
func Export(w io.Writer, l *Ledger, format ExportFormat) error {
	switch format {
	case CSV:
		return ExportCSV(w, l)
	case JSON:
		return ExportJSON(w, l)
	case YAML:
		return ExportYAML(w, l)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// ExportError describes a failed export to a file.
//
// It matches ErrExportPermission when the file could not be written for lack
// of permission, ErrExportFailed otherwise.
type ExportError struct {
	Filename string
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("cannot export to %s: %v", e.Filename, e.Err)
}

func (e *ExportError) Unwrap() []error {
	if errors.Is(e.Err, fs.ErrPermission) {
		return []error{ErrExportPermission, e.Err}
	}
	return []error{ErrExportFailed, e.Err}
}

// ExportFile creates (or truncates) filename and exports the ledger into it.
// On failure the file may be left partially written.
func ExportFile(filename string, l *Ledger, format ExportFormat) error {
	f, err := os.Create(filename)
	if err != nil {
		return &ExportError{Filename: filename, Err: err}
	}
	if err := Export(f, l, format); err != nil {
		f.Close()
		return &ExportError{Filename: filename, Err: err}
	}
	if err := f.Close(); err != nil {
		return &ExportError{Filename: filename, Err: err}
	}
	return nil
}
