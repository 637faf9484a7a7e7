// Package morningstar implements the primary price source, the morningstar
// fund snapshot page. The page is HTML; the relevant fields are the latest
// NAV in a "line text" cell and its date in the adjacent "line heading" cell.
package morningstar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/etnz/fondo"
	"golang.org/x/net/html"
)

const defaultBase = "https://www.morningstarfunds.ie/ie/funds/snapshot/snapshot.aspx?id="

// snapshots maps an ISIN to morningstar's internal snapshot id.
var snapshots = map[fondo.ISIN]string{
	"IE00BYX5NX33": "F00001019E",
	"LU1213836080": "F00000VKNA",
}

// field extraction outcomes. A missing field and an unparseable field are
// distinct failures, but both make the source unavailable to the oracle.
var (
	ErrFieldNotFound = errors.New("field not found in snapshot page")
	ErrUnknownFund   = errors.New("no snapshot id for this ISIN")
)

// priceRe matches the NAV cell content, e.g. "EUR 61,06".
var priceRe = regexp.MustCompile(`^[A-Z]{3}\s+([0-9]+(?:[.,][0-9]+)?)$`)

// dateRe finds a day-first date in the heading cell, e.g. "NAV 28/08/2026".
var dateRe = regexp.MustCompile(`([0-9]{1,2}/[0-9]{1,2}/[0-9]{4})`)

// Client scrapes the snapshot page of a fund.
type Client struct {
	http      *http.Client
	base      string
	snapshots map[fondo.ISIN]string
}

// New creates a morningstar client on top of the given http client.
func New(client *http.Client) *Client {
	return &Client{http: client, base: defaultBase, snapshots: snapshots}
}

// NewWithBase is New with a custom endpoint and snapshot table, for tests.
func NewWithBase(client *http.Client, base string, ids map[fondo.ISIN]string) *Client {
	return &Client{http: client, base: base, snapshots: ids}
}

func (c *Client) Name() string { return "morningstar" }

// Quote fetches and parses the snapshot page for an ISIN.
func (c *Client) Quote(ctx context.Context, isin fondo.ISIN) (fondo.Quote, error) {
	id, ok := c.snapshots[isin]
	if !ok {
		return fondo.Quote{}, fmt.Errorf("%w: %s", ErrUnknownFund, isin)
	}

	body, err := fondo.Wget(ctx, c.http, c.base+id)
	if err != nil {
		return fondo.Quote{}, fmt.Errorf("cannot fetch snapshot for %q: %w", isin, err)
	}

	priceText, headingText, err := snapshotCells(body)
	if err != nil {
		return fondo.Quote{}, err
	}

	price, err := parsePrice(priceText)
	if err != nil {
		return fondo.Quote{}, fmt.Errorf("price cell for %q: %w", isin, err)
	}
	asOf, err := parseHeadingDate(headingText)
	if err != nil {
		return fondo.Quote{}, fmt.Errorf("heading cell for %q: %w", isin, err)
	}

	return fondo.Quote{Price: fondo.EUR(price), AsOf: asOf}, nil
}

// snapshotCells walks the page and returns the text of the first "line text"
// cell and the first "line heading" cell.
func snapshotCells(body []byte) (priceText, headingText string, err error) {
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return "", "", fmt.Errorf("cannot parse snapshot page: %w", err)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "td" {
			switch {
			case priceText == "" && hasClasses(n, "line", "text"):
				priceText = strings.TrimSpace(text(n))
			case headingText == "" && hasClasses(n, "line", "heading"):
				headingText = strings.TrimSpace(text(n))
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	if priceText == "" {
		return "", "", fmt.Errorf("%w: td class %q", ErrFieldNotFound, "line text")
	}
	if headingText == "" {
		return "", "", fmt.Errorf("%w: td class %q", ErrFieldNotFound, "line heading")
	}
	return priceText, headingText, nil
}

// hasClasses reports whether the node's class attribute contains all the
// wanted class names.
func hasClasses(n *html.Node, wanted ...string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		classes := strings.Fields(attr.Val)
		for _, w := range wanted {
			found := false
			for _, c := range classes {
				if c == w {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}
	return false
}

// text concatenates the text nodes under n.
func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

// parsePrice reads the NAV value out of the "line text" cell, accepting the
// page's decimal comma.
func parsePrice(s string) (float64, error) {
	match := priceRe.FindStringSubmatch(s)
	if match == nil {
		return 0, fmt.Errorf("unparseable NAV %q", s)
	}
	val, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable NAV %q: %w", s, err)
	}
	if val <= 0 {
		return 0, fmt.Errorf("non-positive NAV %q", s)
	}
	return val, nil
}

// parseHeadingDate finds the as-of date in the "line heading" cell.
func parseHeadingDate(s string) (fondo.Date, error) {
	match := dateRe.FindStringSubmatch(s)
	if match == nil {
		return fondo.Date{}, fmt.Errorf("no date in heading %q", s)
	}
	return fondo.ParseDate(match[1])
}
