package fundamentals

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func floatPointer(f float64) *float64 {
	return &f
}

func Test_GetMetrics(t *testing.T) {
	t.Run("parses reported metrics and leaves the rest nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/company/metrics", r.URL.Path)
			require.Equal(t, "test-key", r.URL.Query().Get("apikey"))
			require.Equal(t, "AAPL", r.URL.Query().Get("ticker"))

			w.Write([]byte(`{
				"symbol": "AAPL",
				"company_name": "Apple Inc.",
				"metrics": {
					"revenue_growth_yoy": 0.08,
					"roe": 0.31,
					"debt_to_equity": 1.45
				}
			}`))
		}))
		defer server.Close()

		client := Client{
			HttpClient: server.Client(),
			ApiKey:     "test-key",
			BaseUrl:    server.URL,
		}

		metrics, err := client.GetMetrics(context.Background(), "AAPL")
		require.NoError(t, err)

		want := &Metrics{
			RevenueGrowthYoY: floatPointer(0.08),
			Roe:              floatPointer(0.31),
			DebtToEquity:     floatPointer(1.45),
		}
		if diff := cmp.Diff(want, metrics); diff != "" {
			t.Errorf("metrics mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("404 maps to ErrSymbolNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := Client{
			HttpClient: server.Client(),
			ApiKey:     "test-key",
			BaseUrl:    server.URL,
		}

		_, err := client.GetMetrics(context.Background(), "ZZZZ")
		require.ErrorIs(t, err, ErrSymbolNotFound)
	})

	t.Run("non-200 surfaces the upstream error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": "rate limited"}`))
		}))
		defer server.Close()

		client := Client{
			HttpClient: server.Client(),
			ApiKey:     "test-key",
			BaseUrl:    server.URL,
		}

		_, err := client.GetMetrics(context.Background(), "AAPL")
		require.Error(t, err)
		require.Contains(t, err.Error(), "rate limited")
	})
}
