package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"qrpay/kit/observability"
)

func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	var tests = []struct {
		name           string
		cfg            CORSConfig
		method         string
		origin         string
		expectedCode   int
		expectedOrigin string
	}{
		{name: "wildcard", method: http.MethodGet, origin: "http://app.local", expectedCode: http.StatusOK, expectedOrigin: "*"},
		{name: "preflight short circuits", method: http.MethodOptions, origin: "http://app.local", expectedCode: http.StatusNoContent, expectedOrigin: "*"},
		{name: "listed origin echoed", cfg: CORSConfig{AllowedOrigins: []string{"http://app.local"}}, method: http.MethodPost, origin: "http://app.local", expectedCode: http.StatusOK, expectedOrigin: "http://app.local"},
		{name: "unlisted origin gets no header", cfg: CORSConfig{AllowedOrigins: []string{"http://app.local"}}, method: http.MethodPost, origin: "http://evil.local", expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tt.method, "/api/business", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()
			CORS(tt.cfg)(ok).ServeHTTP(rr, req)
			require.Equal(t, tt.expectedCode, rr.Code)
			require.Equal(t, tt.expectedOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { seen = RequestIDFrom(r.Context()) }))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(rr.Header().Get(RequestIDHeader))
	require.NoError(t, err)
	require.Equal(t, rr.Header().Get(RequestIDHeader), seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "caller-id")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, "caller-id", rr.Header().Get(RequestIDHeader))
	require.Equal(t, "caller-id", seen)
}

func TestObservability_RecordsRoutePattern(t *testing.T) {
	m := observability.NewMetrics()
	var buf bytes.Buffer

	r := chi.NewRouter()
	r.Use(RequestID, Observability(m, observability.NewLoggerFromWriter(&buf)))
	r.Get("/api/payments/{paymentID}", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/payments/pay_1", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/api/payments/{paymentID}", "GET", "404")))
	require.Contains(t, buf.String(), `"route":"/api/payments/{paymentID}"`)
}
