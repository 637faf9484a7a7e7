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

// fundCmd holds the flags for the 'fund' subcommand.
type fundCmd struct{}

func (*fundCmd) Name() string     { return "fund" }
func (*fundCmd) Synopsis() string { return "display one fund's contributions and metrics" }
func (*fundCmd) Usage() string {
	return `fdo fund <name>

  Displays the contribution history of a single fund with its cumulative
  invested amount, current value and return per contribution.
`
}

func (c *fundCmd) SetFlags(f *flag.FlagSet) {}

func (c *fundCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one fund name")
		return subcommands.ExitUsageError
	}
	fund := f.Arg(0)

	ledger, err := LoadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	contributions := ledger.ByFund(fund)
	if len(contributions) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no contributions for fund %q\n", fund)
		return subcommands.ExitFailure
	}

	quote := NewOracle().GetQuote(ctx, fund)
	metrics := fondo.ComputeFundMetrics(fund, contributions, quote)

	printMarkdown(renderer.FundMarkdown(metrics))
	return subcommands.ExitSuccess
}
