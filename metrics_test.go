package fondo

import (
	"reflect"
	"testing"
)

func TestComputeFundMetrics_WorkedExample(t *testing.T) {
	// Two contributions and a current price of 25.
	contributions := []Contribution{
		contrib("MSCI World", "2024-01-01", 100, 10),
		contrib("MSCI World", "2024-02-01", 200, 20),
	}
	quote := q(25, "2024-03-01")

	m := ComputeFundMetrics("MSCI World", contributions, &quote)

	if len(m.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(m.Rows))
	}

	wantCumulative := []Money{EUR(100), EUR(300)}
	wantUnits := []Quantity{Q(10), Q(10)}
	wantValue := []Money{EUR(250), EUR(250)}
	wantReturn := []Percent{150.00, 25.00}
	for i, row := range m.Rows {
		if !row.CumulativeInvested.Equal(wantCumulative[i]) {
			t.Errorf("row %d CumulativeInvested = %v, want %v", i, row.CumulativeInvested, wantCumulative[i])
		}
		if !row.Units.Equal(wantUnits[i]) {
			t.Errorf("row %d Units = %v, want %v", i, row.Units, wantUnits[i])
		}
		if row.CurrentValue == nil || !row.CurrentValue.Equal(wantValue[i]) {
			t.Errorf("row %d CurrentValue = %v, want %v", i, row.CurrentValue, wantValue[i])
		}
		if row.Return == nil || !row.Return.Equal(wantReturn[i]) {
			t.Errorf("row %d Return = %v, want %v", i, row.Return, wantReturn[i])
		}
	}

	if !m.TotalInvested.Equal(EUR(300)) {
		t.Errorf("TotalInvested = %v, want 300", m.TotalInvested)
	}
	// (10*100 + 20*200) / 300 = 16.666...
	wantWAC := EUR(5000).Div(Q(300))
	if m.WeightedAverageCost == nil || !m.WeightedAverageCost.Equal(wantWAC) {
		t.Errorf("WeightedAverageCost = %v, want %v", m.WeightedAverageCost, wantWAC)
	}
	if m.EstimatedValue == nil || !m.EstimatedValue.Equal(EUR(500)) {
		t.Errorf("EstimatedValue = %v, want 500", m.EstimatedValue)
	}
}

func TestComputeFundMetrics_SortsByDate(t *testing.T) {
	contributions := []Contribution{
		contrib("A", "2024-02-01", 200, 20),
		contrib("A", "2024-01-01", 100, 10),
	}
	m := ComputeFundMetrics("A", contributions, nil)

	if m.Rows[0].Date != MustParse("2024-01-01") {
		t.Errorf("rows not sorted by ascending date: %v first", m.Rows[0].Date)
	}
	// cumulativeInvested must be non-decreasing and end at the total.
	var prev Money
	for i, row := range m.Rows {
		if row.CumulativeInvested.LessThan(prev) {
			t.Errorf("row %d cumulative %v decreased from %v", i, row.CumulativeInvested, prev)
		}
		prev = row.CumulativeInvested
	}
	if !prev.Equal(EUR(300)) {
		t.Errorf("final cumulative = %v, want total invested 300", prev)
	}
}

func TestComputeFundMetrics_UnavailableQuote(t *testing.T) {
	contributions := []Contribution{
		contrib("A", "2024-01-01", 100, 10),
	}
	m := ComputeFundMetrics("A", contributions, nil)

	for i, row := range m.Rows {
		if row.CurrentValue != nil {
			t.Errorf("row %d CurrentValue = %v, want undefined", i, row.CurrentValue)
		}
		if row.Return != nil {
			t.Errorf("row %d Return = %v, want undefined", i, row.Return)
		}
	}
	if m.EstimatedValue != nil {
		t.Errorf("EstimatedValue = %v, want undefined", m.EstimatedValue)
	}
	if m.Return != nil {
		t.Errorf("Return = %v, want undefined", m.Return)
	}
	// Ledger-only metrics are still computed.
	if !m.TotalInvested.Equal(EUR(100)) {
		t.Errorf("TotalInvested = %v, want 100", m.TotalInvested)
	}
	if m.WeightedAverageCost == nil || !m.WeightedAverageCost.Equal(EUR(10)) {
		t.Errorf("WeightedAverageCost = %v, want 10", m.WeightedAverageCost)
	}
}

func TestComputeFundMetrics_SingleContributionWAC(t *testing.T) {
	m := ComputeFundMetrics("A", []Contribution{contrib("A", "2024-01-01", 123.45, 17.89)}, nil)
	if m.WeightedAverageCost == nil || !m.WeightedAverageCost.Equal(EUR(17.89)) {
		t.Errorf("WeightedAverageCost = %v, want exactly the purchase price", m.WeightedAverageCost)
	}
}

func TestComputeFundMetrics_InvalidRowExcluded(t *testing.T) {
	contributions := []Contribution{
		contrib("A", "2024-01-01", 100, 10),
		contrib("A", "2024-01-15", 50, 0), // zero price: must never be divided
		contrib("A", "2024-02-01", 200, 20),
	}
	quote := q(25, "2024-03-01")
	m := ComputeFundMetrics("A", contributions, &quote)

	if len(m.Invalid) != 1 {
		t.Fatalf("got %d invalid rows, want 1", len(m.Invalid))
	}
	if len(m.Rows) != 2 {
		t.Fatalf("got %d valid rows, want 2", len(m.Rows))
	}
	// The invalid row's amount is excluded from every aggregate.
	if !m.TotalInvested.Equal(EUR(300)) {
		t.Errorf("TotalInvested = %v, want 300", m.TotalInvested)
	}
	wantWAC := EUR(5000).Div(Q(300))
	if m.WeightedAverageCost == nil || !m.WeightedAverageCost.Equal(wantWAC) {
		t.Errorf("WeightedAverageCost = %v, want %v", m.WeightedAverageCost, wantWAC)
	}
}

func TestComputeFundMetrics_EmptyContributions(t *testing.T) {
	quote := q(25, "2024-03-01")
	m := ComputeFundMetrics("A", nil, &quote)

	if m.WeightedAverageCost != nil {
		t.Errorf("WeightedAverageCost = %v, want undefined on zero invested", m.WeightedAverageCost)
	}
	if m.EstimatedValue != nil {
		t.Errorf("EstimatedValue = %v, want undefined with no rows", m.EstimatedValue)
	}
	if !m.TotalInvested.IsZero() {
		t.Errorf("TotalInvested = %v, want zero", m.TotalInvested)
	}
}

func TestComputeFundMetrics_Idempotent(t *testing.T) {
	contributions := []Contribution{
		contrib("A", "2024-02-01", 200, 20),
		contrib("A", "2024-01-01", 100, 10),
	}
	quote := q(25, "2024-03-01")

	a := ComputeFundMetrics("A", contributions, &quote)
	b := ComputeFundMetrics("A", contributions, &quote)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("recomputation differs:\n%+v\n%+v", a, b)
	}
}
