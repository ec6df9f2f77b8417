package currency_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/travel-budget/internal/currency"
)

var _ = Describe("Client", func() {
	var (
		server *httptest.Server
		logger *slog.Logger
	)

	newClient := func(apiKey string) *currency.Client {
		return currency.NewClient(currency.ClientConfig{
			BaseURL: server.URL,
			APIKey:  apiKey,
			Timeout: 2 * time.Second,
		}, logger)
	}

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	})

	AfterEach(func() {
		if server != nil {
			server.Close()
		}
	})

	Context("when the API responds with success", func() {
		BeforeEach(func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/test-key/latest/USD"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"result":"success","base_code":"USD","conversion_rates":{"USD":1,"TRY":33.1,"EUR":0.91}}`))
			}))
		})

		It("returns the conversion rates table", func() {
			rates, err := newClient("test-key").FetchRates(context.Background(), "USD")

			Expect(err).ToNot(HaveOccurred())
			Expect(rates).To(HaveKeyWithValue("TRY", 33.1))
			Expect(rates).To(HaveKeyWithValue("EUR", 0.91))
		})
	})

	Context("when no API key is configured", func() {
		BeforeEach(func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Fail("request should not be made without an api key")
			}))
		})

		It("returns ErrMissingAPIKey without calling the API", func() {
			_, err := newClient("").FetchRates(context.Background(), "USD")

			Expect(err).To(MatchError(currency.ErrMissingAPIKey))
		})
	})

	Context("when the API responds with a non-success result", func() {
		BeforeEach(func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"result":"error","error-type":"invalid-key"}`))
			}))
		})

		It("returns ErrBadResponse", func() {
			_, err := newClient("bad-key").FetchRates(context.Background(), "USD")

			Expect(err).To(MatchError(currency.ErrBadResponse))
		})
	})

	Context("when the API responds with a non-200 status", func() {
		BeforeEach(func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
		})

		It("returns an error", func() {
			_, err := newClient("test-key").FetchRates(context.Background(), "USD")

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("status 503"))
		})
	})

	Context("when the response body is not valid JSON", func() {
		BeforeEach(func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			}))
		})

		It("returns a decode error", func() {
			_, err := newClient("test-key").FetchRates(context.Background(), "USD")

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("decode"))
		})
	})
})
