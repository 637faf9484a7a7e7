package fondo

import (
	"iter"
	"sort"
)

// Ledger is an ordered collection of contributions for one or more funds.
//
// In a Ledger contributions are always in chronological order. A Ledger is
// immutable once built: the valuation engine only derives new series from it.
type Ledger struct {
	contributions []Contribution
}

// NewLedger creates a ledger from the given contributions, sorted by date.
// Contributions on the same day keep their original relative order.
func NewLedger(contributions ...Contribution) *Ledger {
	l := &Ledger{contributions: append([]Contribution(nil), contributions...)}
	l.stableSort()
	return l
}

// stableSort sorts the ledger by contribution date. The sort is stable, meaning
// contributions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.contributions, func(i, j int) bool {
		return l.contributions[i].Date.Before(l.contributions[j].Date)
	})
}

// Len returns the number of contributions in the ledger.
func (l *Ledger) Len() int { return len(l.contributions) }

// Contributions returns an iterator that yields each contribution in
// chronological order.
func (l *Ledger) Contributions() iter.Seq2[int, Contribution] {
	return func(yield func(int, Contribution) bool) {
		for i, c := range l.contributions {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Funds returns an iterator over the distinct fund names, in order of first
// appearance in the ledger.
func (l *Ledger) Funds() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, c := range l.contributions {
			if _, ok := visited[c.Fund]; ok {
				continue
			}
			visited[c.Fund] = struct{}{}
			if !yield(c.Fund) {
				return
			}
		}
	}
}

// ByFund returns the contributions to a single fund, in chronological order.
func (l *Ledger) ByFund(fund string) []Contribution {
	var out []Contribution
	for _, c := range l.contributions {
		if c.Fund == fund {
			out = append(out, c)
		}
	}
	return out
}

// TotalInvested sums the invested amounts over the whole ledger.
func (l *Ledger) TotalInvested() Money {
	var total Money
	for _, c := range l.contributions {
		total = total.Add(c.Invested)
	}
	return total
}

// OldestContributionDate returns the date of the earliest contribution in the
// ledger, or the zero date if the ledger is empty.
func (l *Ledger) OldestContributionDate() Date {
	if len(l.contributions) == 0 {
		return Date{}
	}
	return l.contributions[0].Date
}

// NewestContributionDate returns the date of the latest contribution in the
// ledger, or the zero date if the ledger is empty.
func (l *Ledger) NewestContributionDate() Date {
	if len(l.contributions) == 0 {
		return Date{}
	}
	return l.contributions[len(l.contributions)-1].Date
}
