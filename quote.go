package fondo

import (
	"context"
	"log"
	"sync"
	"time"
)

// Quote is a (price, as-of date) observation of a fund's current market
// price. An unavailable quote is represented by a nil *Quote: parse failures,
// network failures and unmapped funds all collapse to it at the oracle
// boundary, they never propagate to the valuation engine.
type Quote struct {
	Price  Money
	AsOf   Date
	Source string // name of the source that won the reconciliation
}

// Source is one upstream fund-information page.
type Source interface {
	Name() string
	// Quote fetches the current (price, as-of) observation for a fund.
	// Any failure (network, missing field, unparseable field) is an error.
	Quote(ctx context.Context, isin ISIN) (Quote, error)
}

// Reconcile picks the freshest of two optional quotes: the one with the
// strictly later as-of date wins. On a same-day tie the primary wins, so the
// result is deterministic. A nil input loses to any quote; two nils yield nil.
func Reconcile(primary, secondary *Quote) *Quote {
	if primary == nil {
		return secondary
	}
	if secondary == nil {
		return primary
	}
	if secondary.AsOf.After(primary.AsOf) {
		return secondary
	}
	return primary
}

// DefaultSourceTimeout bounds each upstream call so an unresponsive page
// cannot stall a whole rendering cycle.
const DefaultSourceTimeout = 5 * time.Second

// DefaultMemoTTL is how long a fetched quote is reused before refetching.
const DefaultMemoTTL = time.Hour

// Oracle resolves the current quote of a fund by querying its sources and
// reconciling their answers by freshness. Results are memoized per ISIN for a
// bounded window; memoization is an optimization only, a zero TTL disables it
// without affecting correctness.
type Oracle struct {
	catalog Catalog
	sources []Source // sources[0] is the primary, it wins same-day ties
	Timeout time.Duration
	TTL     time.Duration

	now func() time.Time // injected in tests

	mu   sync.Mutex
	memo map[ISIN]memoized
}

type memoized struct {
	quote *Quote
	at    time.Time
}

// NewOracle creates an oracle over the given sources. The first source is the
// primary one.
func NewOracle(catalog Catalog, sources ...Source) *Oracle {
	return &Oracle{
		catalog: catalog,
		sources: sources,
		Timeout: DefaultSourceTimeout,
		TTL:     DefaultMemoTTL,
		now:     time.Now,
		memo:    make(map[ISIN]memoized),
	}
}

// GetQuote returns the reconciled quote for a fund name, or nil if the fund
// is unmapped or every source failed. It never returns an error: absence of a
// quote degrades the metrics, it does not abort the rendering cycle.
func (o *Oracle) GetQuote(ctx context.Context, fund string) *Quote {
	isin, ok := o.catalog.Lookup(fund)
	if !ok {
		log.Printf("no ISIN known for fund %q, quote unavailable", fund)
		return nil
	}
	return o.getQuoteISIN(ctx, isin)
}

func (o *Oracle) getQuoteISIN(ctx context.Context, isin ISIN) *Quote {
	if q, ok := o.cached(isin); ok {
		return q
	}

	var best *Quote
	for _, src := range o.sources {
		q, err := o.ask(ctx, src, isin)
		if err != nil {
			log.Printf("source %q unavailable for %s: %v", src.Name(), isin, err)
			continue
		}
		// best holds the earlier-registered source on ties, so the
		// primary wins by construction.
		best = Reconcile(best, &q)
	}

	o.remember(isin, best)
	return best
}

func (o *Oracle) ask(ctx context.Context, src Source, isin ISIN) (Quote, error) {
	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}
	q, err := src.Quote(ctx, isin)
	if err != nil {
		return Quote{}, err
	}
	q.Source = src.Name()
	return q, nil
}

func (o *Oracle) cached(isin ISIN) (*Quote, bool) {
	if o.TTL <= 0 {
		return nil, false
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	m, ok := o.memo[isin]
	if !ok || o.now().Sub(m.at) > o.TTL {
		return nil, false
	}
	return m.quote, true
}

func (o *Oracle) remember(isin ISIN, q *Quote) {
	if o.TTL <= 0 {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.memo[isin] = memoized{quote: q, at: o.now()}
}

// GetQuotes resolves quotes for several funds concurrently, one lookup per
// fund. The lookups share no state, so a failed or slow fund never blocks the
// others; its entry is simply nil.
func (o *Oracle) GetQuotes(ctx context.Context, funds []string) map[string]*Quote {
	quotes := make(map[string]*Quote, len(funds))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, fund := range funds {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q := o.GetQuote(ctx, fund)
			mu.Lock()
			quotes[fund] = q
			mu.Unlock()
		}()
	}
	wg.Wait()
	return quotes
}
