package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/fondo"
	"github.com/etnz/fondo/renderer"
)

// quoteCmd holds the flags for the 'quote' subcommand.
type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "fetch the latest quotes" }
func (*quoteCmd) Usage() string {
	return `fdo quote [<fund>...]

  Fetches the latest quote for the given funds, or for every fund in the
  catalog when none is given.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	funds := f.Args()
	if len(funds) == 0 {
		for fund := range fondo.DefaultCatalog().Funds() {
			funds = append(funds, fund)
		}
	}
	if len(funds) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no fund to quote")
		return subcommands.ExitUsageError
	}

	quotes := NewOracle().GetQuotes(ctx, funds)

	printMarkdown(renderer.QuotesMarkdown(quotes))
	return subcommands.ExitSuccess
}
