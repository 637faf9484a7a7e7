package fondo

import "sort"

// FundLine is one fund's row in the portfolio breakdown.
type FundLine struct {
	Fund                string
	Invested            Money
	EstimatedValue      *Money // nil when the fund has no quote
	WeightedAverageCost *Money
	Return              *Percent // the fund's own return, not derived from the portfolio one
	Quote               *Quote
	InvalidRows         int
}

// PortfolioSummary is the aggregate across all funds.
type PortfolioSummary struct {
	Date Date

	TotalInvested Money
	// TotalEstimated sums the estimated values of the valued funds. A fund
	// without a quote contributes zero; such funds are listed in Unvalued so
	// the understatement is visible, not silent.
	TotalEstimated Money
	// Difference is TotalEstimated minus TotalInvested.
	Difference Money
	// Return is the overall performance. Nil when TotalInvested is zero.
	Return *Percent

	Funds    []FundLine
	Unvalued []string // funds whose current value is missing from the totals
}

// Aggregate combines per-fund metrics into a portfolio-level summary. It is a
// one-shot pure aggregation: invoked once per rendering cycle, no retained
// state.
func Aggregate(perFund map[string]*FundMetrics) *PortfolioSummary {
	s := &PortfolioSummary{Date: Today()}

	names := make([]string, 0, len(perFund))
	for name := range perFund {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		m := perFund[name]
		line := FundLine{
			Fund:                m.Fund,
			Invested:            m.TotalInvested,
			EstimatedValue:      m.EstimatedValue,
			WeightedAverageCost: m.WeightedAverageCost,
			Return:              m.Return,
			Quote:               m.Quote,
			InvalidRows:         len(m.Invalid),
		}
		s.TotalInvested = s.TotalInvested.Add(m.TotalInvested)
		if m.EstimatedValue != nil {
			s.TotalEstimated = s.TotalEstimated.Add(*m.EstimatedValue)
		} else {
			s.Unvalued = append(s.Unvalued, m.Fund)
		}
		s.Funds = append(s.Funds, line)
	}

	s.Difference = s.TotalEstimated.Sub(s.TotalInvested)
	if !s.TotalInvested.IsZero() {
		ret := percentOf(s.TotalEstimated.value, s.TotalInvested.value)
		s.Return = &ret
	}
	return s
}
