package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/divlab/divtrack/renderer"
	"github.com/google/subcommands"
)

// infoCmd holds the flags for the 'info' subcommand.
type infoCmd struct {
	fetchFlags
}

func (*infoCmd) Name() string     { return "info" }
func (*infoCmd) Synopsis() string { return "company name and earnings per share" }
func (*infoCmd) Usage() string {
	return `dvt info -t <ticker> [-market <market>]

  Shows the company short name and trailing EPS of a ticker.
`
}

func (c *infoCmd) SetFlags(f *flag.FlagSet) {
	c.fetchFlags.SetFlags(f)
}

func (c *infoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := c.client()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	fundamentals, err := client.Fundamentals(ctx, c.ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to fetch EPS: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.InfoMarkdown(c.ticker, fundamentals))
	return subcommands.ExitSuccess
}
