package morningstar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/fondo"
)

const snapshotPage = `<html><body>
<table>
<tr><td class="line heading">NAV 28/08/2024</td></tr>
<tr><td class="line text">EUR 61,06</td></tr>
</table>
</body></html>`

func serve(t *testing.T, page string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	t.Cleanup(srv.Close)
	ids := map[fondo.ISIN]string{"IE00BYX5NX33": "F00001019E"}
	return NewWithBase(srv.Client(), srv.URL+"/snapshot.aspx?id=", ids)
}

func TestQuote(t *testing.T) {
	c := serve(t, snapshotPage)
	got, err := c.Quote(context.Background(), "IE00BYX5NX33")
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if !got.Price.Equal(fondo.EUR(61.06)) {
		t.Errorf("Quote().Price = %v, want 61.06", got.Price)
	}
	if got.AsOf != fondo.MustParse("2024-08-28") {
		t.Errorf("Quote().AsOf = %v, want 2024-08-28", got.AsOf)
	}
}

func TestQuote_UnknownISIN(t *testing.T) {
	c := serve(t, snapshotPage)
	_, err := c.Quote(context.Background(), "LU0000000009")
	if !errors.Is(err, ErrUnknownFund) {
		t.Errorf("Quote() error = %v, want ErrUnknownFund", err)
	}
}

func TestQuote_FieldNotFound(t *testing.T) {
	// A page without the NAV cell: the "not found" outcome, distinct from
	// a present-but-unparseable field.
	c := serve(t, `<html><body><table><tr><td class="line heading">NAV 28/08/2024</td></tr></table></body></html>`)
	_, err := c.Quote(context.Background(), "IE00BYX5NX33")
	if !errors.Is(err, ErrFieldNotFound) {
		t.Errorf("Quote() error = %v, want ErrFieldNotFound", err)
	}
}

func TestQuote_UnparseableField(t *testing.T) {
	testCases := []struct {
		name string
		page string
	}{
		{
			name: "garbage NAV",
			page: `<html><body><table><tr><td class="line heading">NAV 28/08/2024</td><td class="line text">n/a</td></tr></table></body></html>`,
		},
		{
			name: "no date in heading",
			page: `<html><body><table><tr><td class="line heading">NAV pending</td><td class="line text">EUR 61,06</td></tr></table></body></html>`,
		},
		{
			name: "zero NAV",
			page: `<html><body><table><tr><td class="line heading">NAV 28/08/2024</td><td class="line text">EUR 0</td></tr></table></body></html>`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := serve(t, tc.page)
			_, err := c.Quote(context.Background(), "IE00BYX5NX33")
			if err == nil {
				t.Fatal("Quote() expected error")
			}
			if errors.Is(err, ErrFieldNotFound) {
				t.Errorf("Quote() error = %v: field was present, want a parse failure", err)
			}
		})
	}
}

func TestQuote_IgnoresUnrelatedCells(t *testing.T) {
	page := `<html><body><table>
<tr><td class="headline">ignore me</td></tr>
<tr><td class="text">also not it</td></tr>
<tr><td class="line heading">NAV 01/02/2024</td></tr>
<tr><td class="line text">EUR 12,5</td></tr>
</table></body></html>`
	c := serve(t, page)
	got, err := c.Quote(context.Background(), "IE00BYX5NX33")
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if !got.Price.Equal(fondo.EUR(12.5)) || got.AsOf != fondo.MustParse("2024-02-01") {
		t.Errorf("Quote() = %v on %v, want 12.5 on 2024-02-01", got.Price, got.AsOf)
	}
}

func TestQuote_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()
	c := NewWithBase(srv.Client(), srv.URL+"/snapshot.aspx?id=", map[fondo.ISIN]string{"IE00BYX5NX33": "X"})
	if _, err := c.Quote(context.Background(), "IE00BYX5NX33"); err == nil {
		t.Fatal("Quote() expected error on 404")
	}
}
