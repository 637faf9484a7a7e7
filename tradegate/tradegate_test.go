package tradegate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/fondo"
)

func serve(t *testing.T, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewWithBase(srv.Client(), srv.URL+"/refresh.php?isin=")
}

func TestQuote(t *testing.T) {
	testCases := []struct {
		name      string
		body      string
		wantPrice fondo.Money
		wantDate  fondo.Date
		wantErr   bool
	}{
		{
			name:      "plain last",
			body:      `{"last": 61.06, "bid": 61.00, "date": "2024-01-02"}`,
			wantPrice: fondo.EUR(61.06),
			wantDate:  fondo.MustParse("2024-01-02"),
		},
		{
			name:      "last as comma string",
			body:      `{"last": "1 061,5", "date": "2024-01-02"}`,
			wantPrice: fondo.EUR(1061.5),
			wantDate:  fondo.MustParse("2024-01-02"),
		},
		{
			name:      "empty last falls back to bid",
			body:      `{"last": "./.", "bid": 60.5, "date": "2024-01-02"}`,
			wantPrice: fondo.EUR(60.5),
			wantDate:  fondo.MustParse("2024-01-02"),
		},
		{
			name:     "missing date means intraday",
			body:     `{"last": 61.06}`,
			wantDate: fondo.Today(),
		},
		{
			name:    "zero bid is unavailable",
			body:    `{"last": "./.", "bid": 0}`,
			wantErr: true,
		},
		{
			name:    "missing fields",
			body:    `{}`,
			wantErr: true,
		},
		{
			name:    "not json",
			body:    `<html>maintenance</html>`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := serve(t, tc.body)
			got, err := c.Quote(context.Background(), "IE00BYX5NX33")
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Quote() = %v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Quote() error = %v", err)
			}
			if !tc.wantPrice.IsZero() && !got.Price.Equal(tc.wantPrice) {
				t.Errorf("Quote().Price = %v, want %v", got.Price, tc.wantPrice)
			}
			if got.AsOf != tc.wantDate {
				t.Errorf("Quote().AsOf = %v, want %v", got.AsOf, tc.wantDate)
			}
		})
	}
}

func TestQuote_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewWithBase(srv.Client(), srv.URL+"/refresh.php?isin=")
	if _, err := c.Quote(context.Background(), "IE00BYX5NX33"); err == nil {
		t.Fatal("Quote() expected error on 503")
	}
}
