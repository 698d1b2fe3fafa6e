package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/divlab/divtrack"
	"github.com/divlab/divtrack/date"
	"github.com/divlab/divtrack/report"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	fetchFlags
	start  string
	end    string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all computed tables to a spreadsheet" }
func (*exportCmd) Usage() string {
	return `dvt export -t <ticker> -o <file.xlsx> [-market <market>] [-s <date>] [-d <date>]

  Writes the year-wise summary, the raw dividend entries, the session
  transactions and their evaluation into a multi-sheet XLSX workbook.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.fetchFlags.SetFlags(f)
	f.StringVar(&c.start, "s", "2020-01-01", "Start date of the reporting range")
	f.StringVar(&c.end, "d", date.Today().String(), "End date of the reporting range")
	f.StringVar(&c.output, "o", "", "Output file")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := c.client()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file is missing, use -o")
		return subcommands.ExitUsageError
	}
	from, err := date.Parse(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := date.Parse(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}
	r, err := date.NewRange(from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	events, err := client.Dividends(ctx, c.ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching dividends: %v\n", err)
		return subcommands.ExitFailure
	}

	resolver := &divtrack.Resolver{Provider: client}
	summaries := divtrack.AggregateByYear(events, r)
	summaries, err = divtrack.ComputeYields(ctx, summaries, func(ctx context.Context, year int) (divtrack.Money, bool, error) {
		return resolver.YearEnd(ctx, c.ticker, year)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning, some year-end prices are unavailable: %v\n", err)
	}

	ledger, err := DecodeSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading session ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	results := ledger.Evaluate(ctx, c.ticker, events, resolver)

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	rep := &report.Report{
		Ticker:       c.ticker,
		Yearly:       summaries,
		Dividends:    events.FilterRange(r),
		Transactions: ledger.Transactions(),
		Results:      results,
		GrandTotal:   divtrack.GrandTotal(results),
	}
	if err := report.Write(out, rep); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Report written to %s\n", c.output)
	return subcommands.ExitSuccess
}
