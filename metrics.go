package fondo

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MetricsRow is the valuation of a single contribution.
type MetricsRow struct {
	Contribution

	// CumulativeInvested is the running sum of invested amounts in date order.
	CumulativeInvested Money
	// Units is the number of fund units implied by the contribution.
	Units Quantity
	// CurrentValue is Units times the current price. Nil when no quote is
	// available: undefined, not zero.
	CurrentValue *Money
	// Return is the price performance against the purchase price, rounded to
	// two decimals. Nil when no quote is available.
	Return *Percent
}

// FundMetrics is the valuation of all contributions to one fund.
type FundMetrics struct {
	Fund  string
	Quote *Quote // nil when unavailable

	// Rows are the valued contributions in ascending date order.
	Rows []MetricsRow
	// Invalid lists the contributions excluded from every computation
	// (e.g. non-positive purchase price). Reported, never silently dropped.
	Invalid []Contribution

	// TotalInvested is the sum of valid invested amounts.
	TotalInvested Money
	// WeightedAverageCost is the investment-weighted mean purchase price.
	// Nil when there is no valid contribution (zero divisor).
	WeightedAverageCost *Money
	// EstimatedValue is the sum of current values. Nil when no quote is
	// available.
	EstimatedValue *Money
	// Return is the overall performance of the fund, computed from estimated
	// value against total invested. Nil without a quote or without invested
	// capital.
	Return *Percent
}

// ComputeFundMetrics derives the performance metrics of one fund from its
// contributions and an optional current quote.
//
// It is a pure function: no network access, no I/O, no retained state.
// Recomputing from the same inputs yields identical results. Input
// contributions need not be pre-sorted; rows come out in ascending date
// order. When quote is nil every price-dependent field stays nil.
func ComputeFundMetrics(fund string, contributions []Contribution, quote *Quote) *FundMetrics {
	m := &FundMetrics{Fund: fund, Quote: quote}

	valid := make([]Contribution, 0, len(contributions))
	for _, c := range contributions {
		if err := c.Validate(); err != nil {
			m.Invalid = append(m.Invalid, c)
			continue
		}
		valid = append(valid, c)
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Date.Before(valid[j].Date)
	})

	var cumulative Money
	var weighted decimal.Decimal // Σ price_i × invested_i
	var priceCur string
	var estimated Money
	for _, c := range valid {
		cumulative = cumulative.Add(c.Invested)
		weighted = weighted.Add(c.Price.value.Mul(c.Invested.value))
		priceCur = c.Price.Currency()

		row := MetricsRow{
			Contribution:       c,
			CumulativeInvested: cumulative,
			Units:              c.Units(),
		}
		if quote != nil {
			value := quote.Price.Mul(row.Units)
			row.CurrentValue = &value
			ret := percentOf(quote.Price.value, c.Price.value)
			row.Return = &ret
			estimated = estimated.Add(value)
		}
		m.Rows = append(m.Rows, row)
	}

	m.TotalInvested = cumulative
	if !cumulative.IsZero() {
		wac := M(weighted.Div(cumulative.value), priceCur)
		m.WeightedAverageCost = &wac
	}
	if quote != nil && len(valid) > 0 {
		m.EstimatedValue = &estimated
		if !cumulative.IsZero() {
			ret := percentOf(estimated.value, cumulative.value)
			m.Return = &ret
		}
	}
	return m
}
