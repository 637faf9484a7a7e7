// Package chart renders a fund's metrics as PNG charts: the purchase-price
// time series and the invested-vs-estimated comparison per contribution
// date.
package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/etnz/fondo"
)

// PriceSeries renders a line chart of the purchase price over time.
// Returns raw PNG bytes.
func PriceSeries(m *fondo.FundMetrics) ([]byte, error) {
	if len(m.Rows) < 2 {
		return nil, fmt.Errorf("need at least 2 contributions, got %d", len(m.Rows))
	}

	xValues := make([]time.Time, len(m.Rows))
	yValues := make([]float64, len(m.Rows))
	for i, row := range m.Rows {
		xValues[i] = row.Date.Time()
		yValues[i] = row.Price.AsFloat()
	}

	series := chart.TimeSeries{
		Name: "Purchase Price",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("008080"), // teal
			StrokeWidth: 2.5,
			DotWidth:    3,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s Purchase Price", m.Fund),
		Width:  1000,
		Height: 500,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{series},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// InvestedVsEstimated renders grouped bars comparing, per contribution date,
// the amount invested with its estimated current value. The fund must have a
// quote; without one there is nothing to compare.
func InvestedVsEstimated(m *fondo.FundMetrics) ([]byte, error) {
	if m.Quote == nil {
		return nil, fmt.Errorf("fund %s has no quote, nothing to estimate", m.Fund)
	}
	if len(m.Rows) == 0 {
		return nil, fmt.Errorf("fund %s has no valid contributions", m.Fund)
	}

	invested := drawing.ColorFromHex("2c3e50") // dark slate
	estimated := drawing.ColorFromHex("27ae60") // green

	// Grouped bars: per date one invested bar next to one estimated bar.
	var values []chart.Value
	for _, row := range m.Rows {
		values = append(values, chart.Value{
			Label: row.Date.Format("02/01"),
			Value: row.Invested.AsFloat(),
			Style: chart.Style{FillColor: invested, StrokeColor: invested},
		})
		value := 0.0
		if row.CurrentValue != nil {
			value = row.CurrentValue.AsFloat()
		}
		values = append(values, chart.Value{
			Label: "",
			Value: value,
			Style: chart.Style{FillColor: estimated, StrokeColor: estimated},
		})
	}

	graph := chart.BarChart{
		Title:  fmt.Sprintf("%s Invested vs Estimated", m.Fund),
		Width:  1000,
		Height: 500,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		BarWidth: 30,
		Bars:     values,
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
