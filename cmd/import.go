package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/divlab/divtrack"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a CSV file" }
func (*importCmd) Usage() string {
	return `dvt import -f <file.csv>

  Imports transactions into the session ledger. The file must have a header
  row with the columns Date, Quantity, Price and Type (any order); the whole
  file is rejected when a required column is missing.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "CSV file to import")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: file is missing, use -f")
		return subcommands.ExitUsageError
	}
	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	transactions, err := divtrack.ImportTransactions(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	for _, tx := range transactions {
		if status := EncodeTransaction(tx); status != subcommands.ExitSuccess {
			return status
		}
	}
	fmt.Printf("Imported %d transactions.\n", len(transactions))
	return subcommands.ExitSuccess
}
