package fondo

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Percent float64

// percentOf computes (current - reference) / reference * 100, rounded to 2
// decimals. The caller guarantees reference is not zero.
func percentOf(current, reference decimal.Decimal) Percent {
	p := current.Sub(reference).Div(reference).Mul(decimal.NewFromInt(100)).Round(2)
	return Percent(p.InexactFloat64())
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
