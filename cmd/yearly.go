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

// yearlyCmd holds the flags for the 'yearly' subcommand.
type yearlyCmd struct {
	fetchFlags
	start  string
	end    string
	policy string
}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "year-wise dividend summary with yield" }
func (*yearlyCmd) Usage() string {
	return `dvt yearly -t <ticker> [-market <market>] [-s <date>] [-d <date>] [-policy <policy>]

  Fetches the dividend history of a ticker, groups it by calendar year over
  the requested range, and joins each year with its resolved year-end price
  to compute the dividend yield.
`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {
	c.fetchFlags.SetFlags(f)
	f.StringVar(&c.start, "s", "2020-01-01", "Start date of the reporting range")
	f.StringVar(&c.end, "d", date.Today().String(), "End date of the reporting range")
	f.StringVar(&c.policy, "policy", string(divtrack.Dec31Forward), "Year-end price policy (dec31-forward, last-close)")
}

func (c *yearlyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	policy, err := divtrack.ParseYearEndPolicy(c.policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	events, err := client.Dividends(ctx, c.ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching dividends: %v\n", err)
		return subcommands.ExitFailure
	}

	summaries := divtrack.AggregateByYear(events, r)
	resolver := &divtrack.Resolver{Provider: client, Policy: policy}
	summaries, err = divtrack.ComputeYields(ctx, summaries, func(ctx context.Context, year int) (divtrack.Money, bool, error) {
		return resolver.YearEnd(ctx, c.ticker, year)
	})
	if err != nil {
		// the yearly table still renders whatever it did obtain
		fmt.Fprintf(os.Stderr, "Warning, some year-end prices are unavailable: %v\n", err)
	}

	printMarkdown(renderer.YearlyMarkdown(c.ticker, summaries))
	return subcommands.ExitSuccess
}
