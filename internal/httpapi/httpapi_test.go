package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) (http.Handler, *Registry) {
	t.Helper()
	reg := NewRegistry()
	r := NewRouter(RouterConfig{Registry: reg})
	return r, reg
}

func TestCreateAndFetchSymbol(t *testing.T) {
	router, _ := testRouter(t)

	body := bytes.NewBufferString(`{"starting_price": 200, "preset": "volatile"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/symbols/EURUSD", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/symbols/EURUSD/config", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var cfg configResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, "200.00000000", cfg.StartingPrice)
}

func TestListSymbolsEmpty(t *testing.T) {
	router, _ := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/symbols", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"symbols":[]`)
}

func TestUnknownSymbolReturns404(t *testing.T) {
	router, _ := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/symbols/NOPE/config", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCandlesEndpointReturnsRequestedCount(t *testing.T) {
	router, _ := testRouter(t)
	body := bytes.NewBufferString(`{"seed": 7}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/symbols/BTCUSD", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/symbols/BTCUSD/candles?n=5", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Candles []ohlcResponse `json:"candles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out.Candles, 5)
}

func TestRegimeEndpointNotFoundWithoutDetection(t *testing.T) {
	router, _ := testRouter(t)
	body := bytes.NewBufferString(`{}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/symbols/XAUUSD", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/symbols/XAUUSD/regime", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateSymbolRejectsUnknownTrendDirection(t *testing.T) {
	router, _ := testRouter(t)
	body := bytes.NewBufferString(`{"trend_direction": "sideways_ish"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/symbols/BAD", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
