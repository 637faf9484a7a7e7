package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/fondo"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the portfolio-level summary with its per-fund
// breakdown.
func DashboardMarkdown(s *fondo.PortfolioSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Investment Dashboard on %s", s.Date))

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Header: []string{"Total Invested", "Estimated Value", "Difference", "Return"},
		Rows: [][]string{{
			s.TotalInvested.String(),
			s.TotalEstimated.String(),
			s.Difference.SignedString(),
			percent(s.Return),
		}},
	})

	doc.H2("Funds")
	table := md.TableSet{
		Header: []string{"Fondo", "Invested", "Avg Purchase Price", "Current Price", "As Of", "Estimated Value", "Return"},
	}
	for _, line := range s.Funds {
		table.Rows = append(table.Rows, []string{
			line.Fund,
			line.Invested.String(),
			money(line.WeightedAverageCost),
			quotePrice(line.Quote),
			quoteDate(line.Quote),
			money(line.EstimatedValue),
			percent(line.Return),
		})
	}
	doc.Table(table)

	if len(s.Unvalued) > 0 {
		doc.PlainText(fmt.Sprintf("Warning: no current price for %s; the estimated total understates the portfolio.",
			strings.Join(s.Unvalued, ", ")))
	}

	var invalid int
	for _, line := range s.Funds {
		invalid += line.InvalidRows
	}
	if invalid > 0 {
		doc.PlainText(fmt.Sprintf("Warning: %d invalid contribution(s) excluded from all figures.", invalid))
	}

	return doc.String()
}
