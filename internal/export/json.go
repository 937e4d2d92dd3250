package export

import (
	"context"
	"encoding/json"
	"io"

	"github.com/marketsynth/gends/internal/marketdata"
)

// JSONOptions controls array-vs-lines shape and indentation, mirroring
// original_source/src/export/json.rs's JsonOptions (Compress is not
// carried over: no compression library is wired in this repository).
type JSONOptions struct {
	Pretty    bool
	JSONLines bool
}

func DefaultJSONOptions() JSONOptions { return JSONOptions{} }

// JSON is the JSON/JSONL-format implementation of OHLCExporter/TickExporter.
type JSON struct {
	Options JSONOptions
}

func NewJSON() *JSON { return &JSON{Options: DefaultJSONOptions()} }

type ohlcRecord struct {
	Timestamp int64  `json:"timestamp"`
	Open      string `json:"open"`
	High      string `json:"high"`
	Low       string `json:"low"`
	Close     string `json:"close"`
	Volume    uint64 `json:"volume"`
}

type tickRecord struct {
	Timestamp int64   `json:"timestamp"`
	Price     string  `json:"price"`
	Volume    uint64  `json:"volume"`
	Bid       *string `json:"bid,omitempty"`
	Ask       *string `json:"ask,omitempty"`
}

func (e *JSON) ExportOHLC(ctx context.Context, candles []marketdata.OHLC, sink io.Writer) error {
	records := make([]ohlcRecord, len(candles))
	for i, c := range candles {
		if err := ctx.Err(); err != nil {
			return ioError("context cancelled", err)
		}
		records[i] = ohlcRecord{
			Timestamp: c.Timestamp,
			Open:      c.Open.String(),
			High:      c.High.String(),
			Low:       c.Low.String(),
			Close:     c.Close.String(),
			Volume:    uint64(c.Volume),
		}
	}
	return e.writeRecords(records, sink)
}

func (e *JSON) ExportTicks(ctx context.Context, ticks []marketdata.Tick, sink io.Writer) error {
	records := make([]tickRecord, len(ticks))
	for i, t := range ticks {
		if err := ctx.Err(); err != nil {
			return ioError("context cancelled", err)
		}
		rec := tickRecord{Timestamp: t.Timestamp, Price: t.Price.String(), Volume: uint64(t.Volume)}
		if t.Bid != nil {
			s := t.Bid.String()
			rec.Bid = &s
		}
		if t.Ask != nil {
			s := t.Ask.String()
			rec.Ask = &s
		}
		records[i] = rec
	}
	return e.writeRecords(records, sink)
}

// writeRecords handles both supported shapes: a single JSON array, or
// JSON Lines with exactly one object per line terminated by '\n'.
func (e *JSON) writeRecords(records any, sink io.Writer) error {
	if e.Options.JSONLines {
		return e.writeLines(records, sink)
	}

	enc := json.NewEncoder(sink)
	if e.Options.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(records); err != nil {
		return serializationError("encoding JSON array", err)
	}
	return nil
}

func (e *JSON) writeLines(records any, sink io.Writer) error {
	switch rs := records.(type) {
	case []ohlcRecord:
		for _, r := range rs {
			if err := writeLine(sink, r); err != nil {
				return err
			}
		}
	case []tickRecord:
		for _, r := range rs {
			if err := writeLine(sink, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeLine(sink io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return serializationError("marshaling JSON line", err)
	}
	b = append(b, '\n')
	if _, err := sink.Write(b); err != nil {
		return ioError("writing JSON line", err)
	}
	return nil
}
