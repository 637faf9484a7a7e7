// Package cmd implements the CLI application behind the fdo binary.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/etnz/fondo"
	"github.com/etnz/fondo/morningstar"
	"github.com/etnz/fondo/sheet"
	"github.com/etnz/fondo/tradegate"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&dashboardCmd{},
	&fundCmd{},
	&quoteCmd{},
	&chartsCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var sheetLocation = flag.String("sheet", os.Getenv("FONDO_SHEET"), "Path or URL of the contribution sheet (CSV). Defaults to $FONDO_SHEET.")

// LoadLedger reads the contribution sheet into a ledger. Rejected rows are
// logged, they never abort the load.
func LoadLedger(ctx context.Context) (*fondo.Ledger, error) {
	if *sheetLocation == "" {
		return nil, fmt.Errorf("no contribution sheet: set -sheet or $FONDO_SHEET")
	}
	ledger, report, err := sheet.Load(ctx, fondo.CachedClient(), *sheetLocation)
	if err != nil {
		return nil, err
	}
	for _, rej := range report.Rejected {
		log.Printf("sheet %s: skipping %v", *sheetLocation, rej)
	}
	return ledger, nil
}

// NewOracle returns the price oracle over the default catalog, with
// morningstar as the primary source and tradegate as the secondary.
func NewOracle() *fondo.Oracle {
	client := fondo.CachedClient()
	return fondo.NewOracle(fondo.DefaultCatalog(), morningstar.New(client), tradegate.New(client))
}

// printMarkdown renders markdown for the terminal. On render failure the raw
// markdown is still printed.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
