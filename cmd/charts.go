package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/fondo"
	"github.com/etnz/fondo/chart"
)

// chartsCmd holds the flags for the 'charts' subcommand.
type chartsCmd struct {
	output string
}

func (*chartsCmd) Name() string     { return "charts" }
func (*chartsCmd) Synopsis() string { return "render fund charts as PNG files" }
func (*chartsCmd) Usage() string {
	return `fdo charts [-o <dir>] [<fund>...]

  Renders, for each fund, the purchase price time series and the invested
  versus estimated comparison as PNG files.
`
}

func (c *chartsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", ".", "Directory to write the PNG files to.")
}

func (c *chartsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	funds := f.Args()
	if len(funds) == 0 {
		for fund := range ledger.Funds() {
			funds = append(funds, fund)
		}
	}

	oracle := NewOracle()
	status := subcommands.ExitSuccess
	for _, fund := range funds {
		contributions := ledger.ByFund(fund)
		if len(contributions) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no contributions for fund %q\n", fund)
			status = subcommands.ExitFailure
			continue
		}
		metrics := fondo.ComputeFundMetrics(fund, contributions, oracle.GetQuote(ctx, fund))

		if err := c.write(fund, "price", chart.PriceSeries, metrics); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
		}
		if err := c.write(fund, "value", chart.InvestedVsEstimated, metrics); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
		}
	}
	return status
}

func (c *chartsCmd) write(fund, kind string, render func(*fondo.FundMetrics) ([]byte, error), m *fondo.FundMetrics) error {
	png, err := render(m)
	if err != nil {
		return fmt.Errorf("%s chart for %q: %w", kind, fund, err)
	}
	name := filepath.Join(c.output, slug(fund)+"-"+kind+".png")
	if err := os.WriteFile(name, png, 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", name)
	return nil
}

// slug makes a fund name safe as a file name.
func slug(fund string) string {
	return strings.ToLower(strings.ReplaceAll(fund, " ", "-"))
}
