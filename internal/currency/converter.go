package currency

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/frahmantamala/travel-budget/internal"
)

const DefaultCacheTTL = time.Hour

type cachedTable struct {
	rates     map[string]float64
	fetchedAt time.Time
}

// Converter normalizes amounts into a target currency. Rate tables are cached
// per base currency with a TTL; a cache hit never touches the network. Live
// fetch failures fall back to the static table and are logged, never
// surfaced. The one surfaced failure is a target currency absent from both
// tables.
type Converter struct {
	source RateSource
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger

	mu    sync.Mutex
	cache map[string]cachedTable
}

type ConverterOption func(*Converter)

// WithClock injects the time source, used by tests to control cache expiry.
func WithClock(now func() time.Time) ConverterOption {
	return func(c *Converter) {
		c.now = now
	}
}

func WithCacheTTL(ttl time.Duration) ConverterOption {
	return func(c *Converter) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func NewConverter(source RateSource, logger *slog.Logger, opts ...ConverterOption) *Converter {
	c := &Converter{
		source: source,
		ttl:    DefaultCacheTTL,
		now:    time.Now,
		logger: logger,
		cache:  make(map[string]cachedTable),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Convert returns amount expressed in the target currency. Identical source
// and target currencies short-circuit with the amount untouched, so no
// rounding artifacts are introduced for the common single-currency case.
func (c *Converter) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	if from == to {
		return amount, nil
	}

	rates := c.ratesFor(ctx, from)

	rate, ok := rates[to]
	if !ok {
		// last chance: the live table may simply not list the target even
		// though the static table does
		if fb := FallbackRates(from); fb != nil {
			rate, ok = fb[to]
		}
	}
	if !ok {
		c.logger.Error("no conversion rate available", "from", from, "to", to)
		return 0, internal.ErrConversionUnavailable
	}

	return amount * rate, nil
}

// ratesFor returns the cached table for base when fresh, otherwise fetches a
// new one. Any fetch failure degrades silently to the static fallback table;
// fallback tables are not cached so the live source is tried again on the
// next miss.
func (c *Converter) ratesFor(ctx context.Context, base string) map[string]float64 {
	c.mu.Lock()
	entry, ok := c.cache[base]
	if ok && c.now().Sub(entry.fetchedAt) < c.ttl {
		c.mu.Unlock()
		return entry.rates
	}
	c.mu.Unlock()

	rates, err := c.source.FetchRates(ctx, base)
	if err != nil {
		c.logger.Warn("live rate fetch failed, using fallback table", "base", base, "error", err)
		if fb := FallbackRates(base); fb != nil {
			return fb
		}
		return map[string]float64{}
	}

	c.mu.Lock()
	c.cache[base] = cachedTable{rates: rates, fetchedAt: c.now()}
	c.mu.Unlock()

	return rates
}
