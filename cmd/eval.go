package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/divlab/divtrack"
	"github.com/divlab/divtrack/renderer"
	"github.com/google/subcommands"
)

// evalCmd holds the flags for the 'eval' subcommand.
type evalCmd struct {
	fetchFlags
}

func (*evalCmd) Name() string     { return "eval" }
func (*evalCmd) Synopsis() string { return "dividend return of each session transaction" }
func (*evalCmd) Usage() string {
	return `dvt eval -t <ticker> [-market <market>]

  Evaluates every transaction in the session ledger against the ticker's
  dividend and price history: resolved price per share, total dividend since
  the transaction date, and the dividend return percentage. A transaction
  whose market price cannot be resolved falls back to its entered price
  (marked with *) without affecting the others.
`
}

func (c *evalCmd) SetFlags(f *flag.FlagSet) {
	c.fetchFlags.SetFlags(f)
}

func (c *evalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := c.client()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading session ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if ledger.Len() == 0 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", divtrack.ErrNoTransactions)
		return subcommands.ExitFailure
	}

	events, err := client.Dividends(ctx, c.ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching dividends: %v\n", err)
		return subcommands.ExitFailure
	}

	resolver := &divtrack.Resolver{Provider: client}
	results := ledger.Evaluate(ctx, c.ticker, events, resolver)

	printMarkdown(renderer.ResultsMarkdown(c.ticker, results, divtrack.GrandTotal(results)))
	return subcommands.ExitSuccess
}
