// Package renderer turns computed metrics into markdown documents ready for
// terminal display. It is a pure presentation layer: every undefined value
// arrives as a nil and is rendered as "-", never as a zero.
package renderer

import (
	"github.com/etnz/fondo"
)

// undefined is how a missing value shows up in every table.
const undefined = "-"

func money(m *fondo.Money) string {
	if m == nil {
		return undefined
	}
	return m.String()
}

func percent(p *fondo.Percent) string {
	if p == nil {
		return undefined
	}
	return p.SignedString()
}

func quotePrice(q *fondo.Quote) string {
	if q == nil {
		return undefined
	}
	return q.Price.String()
}

func quoteDate(q *fondo.Quote) string {
	if q == nil {
		return undefined
	}
	return q.AsOf.String()
}
