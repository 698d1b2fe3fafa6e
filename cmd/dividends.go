package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/divlab/divtrack/date"
	"github.com/divlab/divtrack/renderer"
	"github.com/google/subcommands"
)

// dividendsCmd holds the flags for the 'dividends' subcommand.
type dividendsCmd struct {
	fetchFlags
	start string
	end   string
}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "list the raw dividend entries of a ticker" }
func (*dividendsCmd) Usage() string {
	return `dvt dividends -t <ticker> [-market <market>] [-s <date>] [-d <date>]

  Lists every dividend event of the ticker within the range, one row per
  ex-date; same-day special and regular dividends appear as separate rows.
`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) {
	c.fetchFlags.SetFlags(f)
	f.StringVar(&c.start, "s", "2020-01-01", "Start date of the reporting range")
	f.StringVar(&c.end, "d", date.Today().String(), "End date of the reporting range")
}

func (c *dividendsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := c.client()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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

	printMarkdown(renderer.DividendsMarkdown(c.ticker, events.FilterRange(r)))
	return subcommands.ExitSuccess
}
