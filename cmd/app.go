// Package cmd implements the CLI application to track dividend history and
// returns for a stock.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/divlab/divtrack"
	"github.com/divlab/divtrack/yahoo"
	"github.com/google/subcommands"
)

// Commands lists the subcommands to register.
// A main package iterates over it and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&yearlyCmd{},
	&dividendsCmd{},
	&infoCmd{},
	&newsCmd{},
	&addCmd{},
	&listCmd{},
	&evalCmd{},
	&importCmd{},
	&exportCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the session transaction file (JSONL format)")

// fetchFlags holds the flags every market-data command shares: the ticker and
// the market it trades on.
type fetchFlags struct {
	ticker string
	market string
}

func (c *fetchFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Stock ticker (e.g. RELIANCE, AAPL)")
	f.StringVar(&c.market, "market", "other", "Market the ticker trades on (india, other)")
}

// suffix returns the exchange suffix of the selected market.
// The india market resolves bare tickers against the NSE listing.
func (c *fetchFlags) suffix() (string, error) {
	switch c.market {
	case "india":
		return ".NS", nil
	case "other", "":
		return "", nil
	default:
		return "", fmt.Errorf("unknown market %q (want india or other)", c.market)
	}
}

// client returns the market data client for the selected market.
func (c *fetchFlags) client() (*yahoo.Client, error) {
	if c.ticker == "" {
		return nil, errors.New("ticker is missing, use -t")
	}
	suffix, err := c.suffix()
	if err != nil {
		return nil, err
	}
	return yahoo.New(yahoo.WithSuffix(suffix)), nil
}

// symbol returns the ticker as the selected market lists it, for collaborators
// that take a raw symbol instead of a market data client. Tickers that already
// carry a suffix are left alone.
func (c *fetchFlags) symbol() (string, error) {
	if c.ticker == "" {
		return "", errors.New("ticker is missing, use -t")
	}
	suffix, err := c.suffix()
	if err != nil {
		return "", err
	}
	if suffix == "" || strings.Contains(c.ticker, ".") {
		return c.ticker, nil
	}
	return c.ticker + suffix, nil
}

// DecodeSession loads the session ledger from the app ledger file.
func DecodeSession() (*divtrack.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, session file does not exist, starting with an empty ledger")
		return divtrack.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return divtrack.DecodeTransactions(f)
}

// EncodeTransaction appends a single transaction into the app session file.
func EncodeTransaction(tx divtrack.Transaction) subcommands.ExitStatus {
	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()
	if err := divtrack.EncodeTransactions(f, divtrack.NewLedger(tx)); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing session file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
