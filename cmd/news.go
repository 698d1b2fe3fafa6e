package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/divlab/divtrack/news"
	"github.com/divlab/divtrack/renderer"
	"github.com/google/subcommands"
)

// newsCmd holds the flags for the 'news' subcommand.
type newsCmd struct {
	fetchFlags
	count int
}

func (*newsCmd) Name() string     { return "news" }
func (*newsCmd) Synopsis() string { return "latest news headlines for a ticker" }
func (*newsCmd) Usage() string {
	return `dvt news -t <ticker> [-market <market>] [-n <count>]

  Scrapes the latest news headlines for a ticker.
`
}

func (c *newsCmd) SetFlags(f *flag.FlagSet) {
	c.fetchFlags.SetFlags(f)
	f.IntVar(&c.count, "n", 5, "Maximum number of headlines")
}

func (c *newsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// the news site lists tickers under their market symbol, e.g. RELIANCE.NS
	symbol, err := c.symbol()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	provider := news.NewProvider()
	headlines, err := provider.Headlines(ctx, symbol, c.count)
	if err != nil {
		// news failures are non-fatal to the rest of the system
		fmt.Fprintf(os.Stderr, "Unable to fetch news: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.NewsMarkdown(c.ticker, headlines))
	return subcommands.ExitSuccess
}
