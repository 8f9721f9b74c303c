package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"goldprice/internal/adapters/memory"
	"goldprice/internal/conversion"
	"goldprice/internal/gold"
	"goldprice/internal/gold/handler"
	"goldprice/internal/language"
	"goldprice/internal/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	now := func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	svc := gold.NewService(pricing.NewEngine(pricing.WithClock(now)), conversion.NewConverter(now), nil)
	lang, err := language.Load(t.Context(), memory.NewPreferenceStore())
	require.NoError(t, err)
	return NewRouter(handler.NewHandler(svc, gold.NewTicker(), lang))
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method string
		target string
		body   string
		want   int
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/api/v1/currencies", "", http.StatusOK},
		{http.MethodGet, "/api/v1/prices/MAD?purity=18k", "", http.StatusOK},
		{http.MethodGet, "/api/v1/prices/MAD/history?period=1w", "", http.StatusOK},
		{http.MethodGet, "/api/v1/prices/MAD/history.csv?period=1w", "", http.StatusOK},
		{http.MethodGet, "/api/v1/prices/MAD/history?period=2w", "", http.StatusBadRequest},
		{http.MethodGet, "/api/v1/ticker", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/api/v1/calculator?currency=USD&weight=2", "", http.StatusOK},
		{http.MethodGet, "/api/v1/convert?amount=100&from=USD&to=EUR", "", http.StatusOK},
		{http.MethodGet, "/api/v1/convert?amount=abc&from=USD&to=EUR", "", http.StatusBadRequest},
		{http.MethodGet, "/api/v1/rates/USD/MAD", "", http.StatusOK},
		{http.MethodGet, "/api/v1/preferences/language", "", http.StatusOK},
		{http.MethodPut, "/api/v1/preferences/language", `{"language":"fr"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/messages?lang=ar", "", http.StatusOK},
		{http.MethodPost, "/api/v1/currencies", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/unknown", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			require.Equal(t, tc.want, rr.Code)
		})
	}
}

func TestRouter_RequestID(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil))
	_, err := uuid.Parse(rr.Header().Get(requestIDHeader))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	req.Header.Set(requestIDHeader, "client-id")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, "client-id", rr.Header().Get(requestIDHeader))
}

func TestRouter_PricesFollowEngine(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/prices/ZZZ", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"currency":"USD"`)
}
