// Package tradegate implements the secondary price source, the Tradegate
// exchange's refresh endpoint. It serves a small JSON document per ISIN with
// the latest traded price.
package tradegate

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fondo"
)

const defaultBase = "https://www.tradegate.de/refresh.php?isin="

// Client queries the refresh endpoint for the latest price of a fund.
type Client struct {
	http *http.Client
	base string
}

// New creates a tradegate client on top of the given http client.
func New(client *http.Client) *Client {
	return &Client{http: client, base: defaultBase}
}

// NewWithBase is New with a custom endpoint, for tests.
func NewWithBase(client *http.Client, base string) *Client {
	return &Client{http: client, base: base}
}

func (c *Client) Name() string { return "tradegate" }

// Quote fetches the latest quote for an ISIN.
//
// The endpoint is quirky: 'last' is the last transaction and moves slower
// than the bid, but the bid can be 0; an empty last shows up as the string
// "./."; numeric values sometimes come back as strings with a decimal comma.
func (c *Client) Quote(ctx context.Context, isin fondo.ISIN) (fondo.Quote, error) {
	var jobj any
	if err := fondo.Jwget(ctx, c.http, c.base+isin.String(), &jobj); err != nil {
		return fondo.Quote{}, fmt.Errorf("error retrieving %q: %w", isin, err)
	}

	jval, err := jsonpath.Get("$.last", jobj)
	if err != nil {
		return fondo.Quote{}, fmt.Errorf("no 'last' field for %q: %w", isin, err)
	}
	if s, ok := jval.(string); ok && s == "./." {
		// trade gate show's empty last this way, use the bid instead
		jval, err = jsonpath.Get("$.bid", jobj)
		if err != nil {
			return fondo.Quote{}, fmt.Errorf("no 'bid' fallback for %q: %w", isin, err)
		}
	}

	val, err := asFloat(jval)
	if err != nil {
		return fondo.Quote{}, fmt.Errorf("cannot read value for %q: %w", isin, err)
	}
	if val == 0 {
		// sometimes the bid is empty and returns 0
		return fondo.Quote{}, fmt.Errorf("empty bid for %q, no value to return", isin)
	}

	return fondo.Quote{Price: fondo.EUR(val), AsOf: c.asOf(jobj)}, nil
}

// asOf extracts the quote date. The endpoint reports the tape's trading day
// in a 'date' field; when it is absent the price is today's intraday value.
func (c *Client) asOf(jobj any) fondo.Date {
	jval, err := jsonpath.Get("$.date", jobj)
	if err != nil {
		return fondo.Today()
	}
	s, ok := jval.(string)
	if !ok {
		return fondo.Today()
	}
	day, err := fondo.ParseDate(s)
	if err != nil {
		return fondo.Today()
	}
	return day
}

// asFloat reads a tradegate numeric value, accepting the endpoint's
// comma-decimal string form.
func asFloat(jval any) (float64, error) {
	if val, ok := jval.(float64); ok {
		return val, nil
	}
	sval, ok := jval.(string)
	if !ok {
		return 0, fmt.Errorf("value is neither a float nor a string: %v", jval)
	}
	sval = strings.ReplaceAll(sval, ",", ".")
	sval = strings.ReplaceAll(sval, " ", "")
	val, err := strconv.ParseFloat(sval, 64)
	if err != nil {
		return 0, fmt.Errorf("value is an invalid string %q: %w", sval, err)
	}
	return val, nil
}
