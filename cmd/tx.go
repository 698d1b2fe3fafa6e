package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/divlab/divtrack"
	"github.com/divlab/divtrack/date"
	"github.com/divlab/divtrack/renderer"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date     string
	quantity int
	price    float64
	side     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a transaction to the session ledger" }
func (*addCmd) Usage() string {
	return `dvt add -date <date> -q <quantity> -price <price> [-side buy|sell]

  Records a buy or sell transaction in the session ledger file.

Usage Examples:
$ dvt add -date 2022-01-01 -q 10 -price 100.0
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Transaction date (defaults to today)")
	f.IntVar(&c.quantity, "q", 0, "Quantity of shares")
	f.Float64Var(&c.price, "price", 0, "Price per share")
	f.StringVar(&c.side, "side", "buy", "Transaction side (buy, sell)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var day date.Date
	if c.date != "" {
		var err error
		day, err = date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	side, err := divtrack.ParseSide(c.side)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx, err := divtrack.Transaction{
		Date:      day,
		Quantity:  divtrack.Q(c.quantity),
		UnitPrice: divtrack.M(c.price, ""),
		Side:      side,
	}.Validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if status := EncodeTransaction(tx); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Println("Transaction added.")
	return subcommands.ExitSuccess
}

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the session transactions" }
func (*listCmd) Usage() string {
	return `dvt list

  Lists the transactions recorded in the session ledger file.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading session ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TransactionsMarkdown(ledger.Transactions()))
	return subcommands.ExitSuccess
}
