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

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the portfolio dashboard" }
func (*dashboardCmd) Usage() string {
	return `fdo dashboard

  Displays the portfolio summary: invested and estimated totals and the
  per-fund breakdown, valued at the latest available quotes.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	summary, err := buildSummary(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building dashboard: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DashboardMarkdown(summary))
	return subcommands.ExitSuccess
}

// buildSummary loads the ledger, fetches quotes for every fund in it and
// aggregates the result. Shared with the assist command.
func buildSummary(ctx context.Context) (*fondo.PortfolioSummary, error) {
	ledger, err := LoadLedger(ctx)
	if err != nil {
		return nil, err
	}

	var funds []string
	for fund := range ledger.Funds() {
		funds = append(funds, fund)
	}

	quotes := NewOracle().GetQuotes(ctx, funds)

	perFund := make(map[string]*fondo.FundMetrics, len(funds))
	for _, fund := range funds {
		perFund[fund] = fondo.ComputeFundMetrics(fund, ledger.ByFund(fund), quotes[fund])
	}
	return fondo.Aggregate(perFund), nil
}
