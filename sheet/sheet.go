// Package sheet loads the contributions ledger from the tabular spreadsheet
// export the user maintains. The sheet is CSV, fetched over HTTP (a published
// spreadsheet export link) or read from a local file, with the columns
// "Fondo", "Fecha", "Dinero Inv." and "Valor Compra".
package sheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/etnz/fondo"
	"github.com/shopspring/decimal"
)

// Column headers as they appear in the sheet.
const (
	colFund     = "Fondo"
	colDate     = "Fecha"
	colInvested = "Dinero Inv."
	colPrice    = "Valor Compra"
)

// RowError records one rejected row. Rejected rows are counted and reported,
// never silently dropped or coerced to zero.
type RowError struct {
	Line int // 1-based line number in the sheet, header included
	Err  error
}

func (e RowError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

// Report describes the outcome of a load.
type Report struct {
	Loaded   int
	Rejected []RowError
}

// Load reads the contributions sheet from an http(s) URL or a local file
// path and builds the ledger. A failure to obtain or parse the table at all
// is fatal and returned as an error; individual malformed rows only land in
// the report.
func Load(ctx context.Context, client *http.Client, location string) (*fondo.Ledger, *Report, error) {
	content, err := fetch(ctx, client, location)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load contributions sheet %q: %w", location, err)
	}
	return Parse(bytes.NewReader(content))
}

func fetch(ctx context.Context, client *http.Client, location string) ([]byte, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return fondo.Wget(ctx, client, location)
	}
	return os.ReadFile(location)
}

// Parse reads the CSV table and builds the ledger. Column order is free, the
// header row names the columns.
func Parse(r io.Reader) (*fondo.Ledger, *Report, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are rejected per row, not fatally
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read sheet header: %w", err)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return nil, nil, err
	}

	var contributions []fondo.Contribution
	report := &Report{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("cannot read sheet line %d: %w", line, err)
		}

		c, err := parseRow(cols, record)
		if err == nil {
			err = c.Validate()
		}
		if err != nil {
			report.Rejected = append(report.Rejected, RowError{Line: line, Err: err})
			continue
		}
		contributions = append(contributions, c)
		report.Loaded++
	}

	return fondo.NewLedger(contributions...), report, nil
}

// indexColumns maps the required column names to their position.
func indexColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int)
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colFund, colDate, colInvested, colPrice} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("sheet is missing column %q (got %v)", required, header)
		}
	}
	return cols, nil
}

func parseRow(cols map[string]int, record []string) (fondo.Contribution, error) {
	var c fondo.Contribution

	get := func(col string) (string, error) {
		i := cols[col]
		if i >= len(record) {
			return "", fmt.Errorf("missing value for %q", col)
		}
		return strings.TrimSpace(record[i]), nil
	}

	fund, err := get(colFund)
	if err != nil {
		return c, err
	}
	c.Fund = fund

	str, err := get(colDate)
	if err != nil {
		return c, err
	}
	day, err := fondo.ParseDate(str)
	if err != nil {
		return c, fmt.Errorf("column %q: %w", colDate, err)
	}
	c.Date = day

	invested, err := amount(cols, record, colInvested)
	if err != nil {
		return c, err
	}
	c.Invested = invested

	price, err := amount(cols, record, colPrice)
	if err != nil {
		return c, err
	}
	c.Price = price

	return c, nil
}

// amount parses a numeric cell into exact euros, accepting the sheet's
// decimal comma.
func amount(cols map[string]int, record []string, col string) (fondo.Money, error) {
	i := cols[col]
	if i >= len(record) {
		return fondo.Money{}, fmt.Errorf("missing value for %q", col)
	}
	str := strings.TrimSpace(record[i])
	str = strings.ReplaceAll(str, ",", ".")
	d, err := decimal.NewFromString(str)
	if err != nil {
		return fondo.Money{}, fmt.Errorf("column %q: invalid number %q: %w", col, record[i], err)
	}
	return fondo.EUR(d), nil
}
