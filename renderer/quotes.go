package renderer

import (
	"bytes"
	"sort"

	"github.com/etnz/fondo"
	md "github.com/nao1215/markdown"
)

// QuotesMarkdown renders the latest quote per fund. Funds without a quote
// show as undefined.
func QuotesMarkdown(quotes map[string]*fondo.Quote) string {
	names := make([]string, 0, len(quotes))
	for name := range quotes {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		q := quotes[name]
		source := undefined
		if q != nil {
			source = q.Source
		}
		rows = append(rows, []string{name, quotePrice(q), quoteDate(q), source})
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Quotes")
	doc.Table(md.TableSet{
		Header: []string{"Fondo", "Price", "As Of", "Source"},
		Rows:   rows,
	})
	return doc.String()
}
