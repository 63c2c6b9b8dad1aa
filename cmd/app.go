// Package cmd implements the CLI application to track expenses.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/etnz/expense"
	"github.com/etnz/expense/date"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands lists the subcommands of the application, with their group.
var Commands = []struct {
	Group string
	Cmd   subcommands.Command
}{
	{"expenses", &addCmd{}},
	{"expenses", &deleteCmd{}},
	{"expenses", &updateCmd{}},
	{"reports", &listCmd{}},
	{"reports", &summaryCmd{}},
	{"reports", &reportCmd{}},
	{"reports", &exportCmd{}},
	{"reports", &queryCmd{}},
	{"help", &topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, e := range Commands {
		c.Register(e.Cmd, e.Group)
	}
}

// IsCommand reports whether name is one of the application subcommands.
func IsCommand(name string) bool {
	for _, e := range Commands {
		if e.Cmd.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store", "", "Path to the expense store (JSON). Defaults to $"+EnvStore+" or ~/"+expense.StoreFileName)
var currencyCode = flag.String("currency", "", "ISO 4217 currency used to display amounts. Defaults to $"+EnvCurrency+" or "+expense.DefaultCurrency)
var verbose = flag.Bool("v", false, "Print diagnostics on stderr. Also enabled by $"+EnvVerbose)

// DotEnvFile is the optional file in the home directory providing ET_* variables.
const DotEnvFile = ".expense_tracker.env"

// today returns the current date, tests replace it.
var today = date.Today

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "et", Level: log.WarnLevel})

// LoadConfig loads the optional dotenv file from the home directory into the
// environment. Variables already set in the environment are kept.
func LoadConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	file := filepath.Join(home, DotEnvFile)
	if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("cannot load dotenv file", "file", file, "err", err)
	}
}

// Verbose reports whether diagnostics are enabled, by flag or environment.
func Verbose() bool {
	if *verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

// StorePath returns the store location: the -store flag, then $ET_STORE, then the home default.
func StorePath() (string, error) {
	if *storeFile != "" {
		return *storeFile, nil
	}
	if p := os.Getenv(EnvStore); p != "" {
		return p, nil
	}
	return expense.DefaultStorePath()
}

// Currency returns the display currency: the -currency flag, then $ET_CURRENCY, then USD.
func Currency() (expense.Currency, error) {
	code := *currencyCode
	if code == "" {
		code = os.Getenv(EnvCurrency)
	}
	if code == "" {
		code = expense.DefaultCurrency
	}
	return expense.LookupCurrency(code)
}

// OpenStore is the central function to open the app store.
func OpenStore() (*expense.Store, error) {
	if Verbose() {
		logger.SetLevel(log.DebugLevel)
	}
	path, err := StorePath()
	if err != nil {
		return nil, err
	}
	s := expense.NewStore(path)
	s.Logger = logger
	return s, nil
}

// DecodeLedger opens the app store and loads its ledger.
//
// A corrupted store is reported to the user and an empty ledger is returned
// so the command carries on. Any other failure is reported and ok is false.
func DecodeLedger() (store *expense.Store, ledger *expense.Ledger, ok bool) {
	store, err := OpenStore()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil, nil, false
	}
	ledger, err = store.Load()
	if errors.Is(err, expense.ErrStoreCorrupt) {
		printError(err)
		return store, ledger, true
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil, nil, false
	}
	return store, ledger, true
}

// EncodeLedger saves the ledger into the app store, reporting failures.
func EncodeLedger(store *expense.Store, ledger *expense.Ledger) bool {
	if err := store.Save(ledger); err != nil {
		fmt.Printf("Error: could not save expenses: %v\n", err)
		return false
	}
	return true
}

// printError prints the one line user message for err.
func printError(err error) {
	switch {
	case errors.Is(err, expense.ErrInvalidAmount):
		fmt.Println("Error: Amount must be a positive number.")
	case errors.Is(err, expense.ErrInvalidDate):
		fmt.Println("Error: Invalid date format. Use YYYY-MM-DD.")
	case errors.Is(err, expense.ErrInvalidMonth):
		fmt.Println("Error: Month must be between 1 and 12.")
	case errors.Is(err, expense.ErrStoreCorrupt):
		fmt.Println("Error: Data file is corrupted.")
	default:
		fmt.Printf("Error: %v\n", err)
	}
}

// visited returns the names of the flags explicitly set on the command line.
func visited(f *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return set
}
