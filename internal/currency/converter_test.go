package currency_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/travel-budget/internal"
	"github.com/frahmantamala/travel-budget/internal/currency"
)

func TestCurrency(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Currency Suite")
}

type fakeRateSource struct {
	rates      map[string]map[string]float64
	err        error
	fetchCount int
}

func (f *fakeRateSource) FetchRates(_ context.Context, base string) (map[string]float64, error) {
	f.fetchCount++
	if f.err != nil {
		return nil, f.err
	}
	table, ok := f.rates[base]
	if !ok {
		return nil, errors.New("unknown base currency")
	}
	return table, nil
}

var _ = Describe("Converter", func() {
	var (
		source    *fakeRateSource
		converter *currency.Converter
		logger    *slog.Logger
		clock     time.Time
	)

	BeforeEach(func() {
		clock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		source = &fakeRateSource{
			rates: map[string]map[string]float64{
				"USD": {"TRY": 34.0, "EUR": 0.9, "GBP": 0.78},
				"EUR": {"USD": 1.0 / 0.9},
			},
		}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		converter = currency.NewConverter(source, logger,
			currency.WithCacheTTL(time.Hour),
			currency.WithClock(func() time.Time { return clock }),
		)
	})

	Describe("Convert", func() {
		Context("when source and target currencies match", func() {
			It("returns the amount unchanged without fetching rates", func() {
				result, err := converter.Convert(context.Background(), 123.456, "TRY", "TRY")

				Expect(err).ToNot(HaveOccurred())
				Expect(result).To(Equal(123.456))
				Expect(source.fetchCount).To(Equal(0))
			})

			It("treats currency codes case-insensitively", func() {
				result, err := converter.Convert(context.Background(), 50, "usd", "USD")

				Expect(err).ToNot(HaveOccurred())
				Expect(result).To(Equal(50.0))
				Expect(source.fetchCount).To(Equal(0))
			})
		})

		Context("when currencies differ", func() {
			It("multiplies by the live rate for the base currency", func() {
				result, err := converter.Convert(context.Background(), 10, "USD", "TRY")

				Expect(err).ToNot(HaveOccurred())
				Expect(result).To(BeNumerically("~", 340.0, 1e-9))
			})

			It("round-trips within floating point tolerance when rates are reciprocal", func() {
				toEUR, err := converter.Convert(context.Background(), 100, "USD", "EUR")
				Expect(err).ToNot(HaveOccurred())

				back, err := converter.Convert(context.Background(), toEUR, "EUR", "USD")
				Expect(err).ToNot(HaveOccurred())
				Expect(back).To(BeNumerically("~", 100.0, 1e-9))
			})
		})

		Context("caching", func() {
			It("serves repeated conversions for the same base from cache", func() {
				_, err := converter.Convert(context.Background(), 10, "USD", "TRY")
				Expect(err).ToNot(HaveOccurred())

				_, err = converter.Convert(context.Background(), 20, "USD", "EUR")
				Expect(err).ToNot(HaveOccurred())

				Expect(source.fetchCount).To(Equal(1))
			})

			It("refetches after the TTL elapses", func() {
				_, err := converter.Convert(context.Background(), 10, "USD", "TRY")
				Expect(err).ToNot(HaveOccurred())
				Expect(source.fetchCount).To(Equal(1))

				clock = clock.Add(2 * time.Hour)

				_, err = converter.Convert(context.Background(), 10, "USD", "TRY")
				Expect(err).ToNot(HaveOccurred())
				Expect(source.fetchCount).To(Equal(2))
			})

			It("keeps serving a fresh cache entry within the TTL", func() {
				_, err := converter.Convert(context.Background(), 10, "USD", "TRY")
				Expect(err).ToNot(HaveOccurred())

				clock = clock.Add(30 * time.Minute)

				_, err = converter.Convert(context.Background(), 10, "USD", "TRY")
				Expect(err).ToNot(HaveOccurred())
				Expect(source.fetchCount).To(Equal(1))
			})
		})

		Context("when the live source fails", func() {
			BeforeEach(func() {
				source.err = errors.New("connection refused")
			})

			It("falls back to the static table silently", func() {
				result, err := converter.Convert(context.Background(), 10, "USD", "TRY")

				Expect(err).ToNot(HaveOccurred())
				Expect(result).To(BeNumerically("~", 325.0, 1e-9))
			})

			It("does not cache the fallback table", func() {
				_, err := converter.Convert(context.Background(), 10, "USD", "TRY")
				Expect(err).ToNot(HaveOccurred())

				_, err = converter.Convert(context.Background(), 10, "USD", "TRY")
				Expect(err).ToNot(HaveOccurred())

				Expect(source.fetchCount).To(Equal(2))
			})
		})

		Context("when the target currency is unknown everywhere", func() {
			It("returns ErrConversionUnavailable", func() {
				_, err := converter.Convert(context.Background(), 10, "USD", "XXX")

				Expect(err).To(MatchError(internal.ErrConversionUnavailable))
			})

			It("returns ErrConversionUnavailable when the base is unknown too", func() {
				source.err = errors.New("connection refused")

				_, err := converter.Convert(context.Background(), 10, "AUD", "JPY")

				Expect(err).To(MatchError(internal.ErrConversionUnavailable))
			})
		})
	})
})

var _ = Describe("Format", func() {
	It("formats a known currency for a locale", func() {
		out := currency.Format(1234.5, "USD", "en-US")

		Expect(out).To(ContainSubstring("1,234.50"))
	})

	It("falls back to plain formatting for unknown currency codes", func() {
		out := currency.Format(12.3, "???", "en-US")

		Expect(out).To(Equal("12.30 ???"))
	})

	It("falls back to English for an unparseable locale", func() {
		out := currency.Format(10, "EUR", "not a locale")

		Expect(out).ToNot(BeEmpty())
	})
})
