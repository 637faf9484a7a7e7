package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fondo"
	md "github.com/nao1215/markdown"
)

// FundMarkdown renders one fund's metrics: a row of metric cards followed by
// the per-contribution table.
func FundMarkdown(m *fondo.FundMetrics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Fund %s", m.Fund))

	if m.Quote != nil && m.Quote.Source != "" {
		doc.PlainText(fmt.Sprintf("Quote from %s as of %s.", m.Quote.Source, m.Quote.AsOf))
	} else if m.Quote == nil {
		doc.PlainText("No current price available: estimated values and returns are undefined.")
	}

	doc.H2("Metrics")
	doc.Table(md.TableSet{
		Header: []string{"Current Price", "Avg Purchase Price", "Total Invested", "Estimated Value", "Return"},
		Rows: [][]string{{
			quotePrice(m.Quote),
			money(m.WeightedAverageCost),
			m.TotalInvested.String(),
			money(m.EstimatedValue),
			percent(m.Return),
		}},
	})

	doc.H2("Contributions")
	table := md.TableSet{
		Header: []string{"Fecha", "Valor Compra", "Dinero Inv.", "Total Invertido", "Valor Actual", "Rendimiento"},
	}
	for _, row := range m.Rows {
		table.Rows = append(table.Rows, []string{
			row.Date.String(),
			row.Price.String(),
			row.Invested.String(),
			row.CumulativeInvested.String(),
			money(row.CurrentValue),
			percent(row.Return),
		})
	}
	doc.Table(table)

	if n := len(m.Invalid); n > 0 {
		doc.PlainText(fmt.Sprintf("Warning: %d invalid contribution(s) excluded from all figures.", n))
	}

	return doc.String()
}
