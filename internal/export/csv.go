package export

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/marketsynth/gends/internal/marketdata"
)

// CSVOptions controls header inclusion and delimiter, mirroring
// original_source/src/export/csv.rs's CsvOptions.
type CSVOptions struct {
	IncludeHeaders bool
	Delimiter      rune
}

// DefaultCSVOptions matches the schema in spec.md §6: headers on, comma
// delimiter.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{IncludeHeaders: true, Delimiter: ','}
}

// CSV is the CSV-format implementation of OHLCExporter/TickExporter.
type CSV struct {
	Options CSVOptions
}

// NewCSV builds a CSV exporter with the default options.
func NewCSV() *CSV { return &CSV{Options: DefaultCSVOptions()} }

func (e *CSV) writer(sink io.Writer) *csv.Writer {
	w := csv.NewWriter(sink)
	if e.Options.Delimiter != 0 {
		w.Comma = e.Options.Delimiter
	}
	return w
}

// ExportOHLC writes the header row from spec.md §6 followed by one row
// per candle.
func (e *CSV) ExportOHLC(ctx context.Context, candles []marketdata.OHLC, sink io.Writer) error {
	w := e.writer(sink)
	if e.Options.IncludeHeaders {
		if err := w.Write([]string{"timestamp", "open", "high", "low", "close", "volume"}); err != nil {
			return ioError("writing OHLC header", err)
		}
	}
	for _, c := range candles {
		if err := ctx.Err(); err != nil {
			return ioError("context cancelled", err)
		}
		row := []string{
			strconv.FormatInt(c.Timestamp, 10),
			c.Open.String(),
			c.High.String(),
			c.Low.String(),
			c.Close.String(),
			strconv.FormatUint(uint64(c.Volume), 10),
		}
		if err := w.Write(row); err != nil {
			return serializationError("writing OHLC row", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return ioError("flushing OHLC writer", err)
	}
	return nil
}

// ExportTicks writes the tick header row from spec.md §6, leaving
// bid/ask empty when absent.
func (e *CSV) ExportTicks(ctx context.Context, ticks []marketdata.Tick, sink io.Writer) error {
	w := e.writer(sink)
	if e.Options.IncludeHeaders {
		if err := w.Write([]string{"timestamp", "price", "volume", "bid", "ask"}); err != nil {
			return ioError("writing tick header", err)
		}
	}
	for _, t := range ticks {
		if err := ctx.Err(); err != nil {
			return ioError("context cancelled", err)
		}
		bid, ask := "", ""
		if t.Bid != nil {
			bid = t.Bid.String()
		}
		if t.Ask != nil {
			ask = t.Ask.String()
		}
		row := []string{
			strconv.FormatInt(t.Timestamp, 10),
			t.Price.String(),
			strconv.FormatUint(uint64(t.Volume), 10),
			bid,
			ask,
		}
		if err := w.Write(row); err != nil {
			return serializationError("writing tick row", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return ioError("flushing tick writer", err)
	}
	return nil
}
