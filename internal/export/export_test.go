package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketsynth/gends/internal/marketdata"
	"github.com/marketsynth/gends/internal/pricing"
)

func sampleCandles(t *testing.T) []marketdata.OHLC {
	t.Helper()
	p := func(v float64) pricing.Price { return pricing.NewFromFloat(v, pricing.Zero()) }
	c1, err := marketdata.NewOHLC(p(100), p(105), p(99), p(102), 1000, 0)
	require.NoError(t, err)
	c2, err := marketdata.NewOHLC(p(102), p(110), p(101), p(108), 1200, 60000)
	require.NoError(t, err)
	return []marketdata.OHLC{c1, c2}
}

func TestCSVExportOHLCHeaderAndRows(t *testing.T) {
	candles := sampleCandles(t)
	var buf bytes.Buffer
	exp := NewCSV()
	require.NoError(t, exp.ExportOHLC(context.Background(), candles, &buf))

	r := csv.NewReader(strings.NewReader(buf.String()))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"timestamp", "open", "high", "low", "close", "volume"}, rows[0])
	assert.Len(t, rows, 3) // header + 2 candles
}

func TestCSVExportTicksEmptySpreadFields(t *testing.T) {
	ticks := []marketdata.Tick{{Price: pricing.NewFromFloat(100, pricing.Zero()), Volume: 10, Timestamp: 0}}
	var buf bytes.Buffer
	exp := NewCSV()
	require.NoError(t, exp.ExportTicks(context.Background(), ticks, &buf))

	r := csv.NewReader(strings.NewReader(buf.String()))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "", rows[1][3])
	assert.Equal(t, "", rows[1][4])
}

func TestJSONArrayExport(t *testing.T) {
	candles := sampleCandles(t)
	var buf bytes.Buffer
	exp := NewJSON()
	require.NoError(t, exp.ExportOHLC(context.Background(), candles, &buf))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "["))
}

func TestJSONLinesExport(t *testing.T) {
	candles := sampleCandles(t)
	var buf bytes.Buffer
	exp := &JSON{Options: JSONOptions{JSONLines: true}}
	require.NoError(t, exp.ExportOHLC(context.Background(), candles, &buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "{"))
	}
}

func TestNotAvailable(t *testing.T) {
	err := NotAvailable("chart")
	assert.Equal(t, ErrFeatureNotAvailable, err.Kind)
}
