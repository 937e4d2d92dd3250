// Package export implements the kernel-to-exporter contract of
// spec.md §6: narrow interfaces that consume immutable OHLC/Tick slices
// and report success or a typed error, never reaching into the core.
package export

import (
	"context"
	"fmt"
	"io"

	"github.com/marketsynth/gends/internal/marketdata"
)

// OHLCExporter writes a candle slice to a sink.
type OHLCExporter interface {
	ExportOHLC(ctx context.Context, candles []marketdata.OHLC, sink io.Writer) error
}

// TickExporter writes a tick slice to a sink.
type TickExporter interface {
	ExportTicks(ctx context.Context, ticks []marketdata.Tick, sink io.Writer) error
}

// ErrorKind is the closed exporter-side error taxonomy (spec.md §7's
// SerializationError/IoError, generalized with the sibling variants
// original_source/src/export/error.rs carries).
type ErrorKind string

const (
	ErrIO                  ErrorKind = "io"
	ErrSerialization       ErrorKind = "serialization"
	ErrConfiguration       ErrorKind = "configuration"
	ErrInvalidData         ErrorKind = "invalid_data"
	ErrDatabase            ErrorKind = "database"
	ErrChart               ErrorKind = "chart"
	ErrFeatureNotAvailable ErrorKind = "feature_not_available"
)

// Error is the exporter-side error type; core packages never produce it.
type Error struct {
	Kind   ErrorKind
	Reason string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export: %s: %s: %v", e.Kind, e.Reason, e.Cause)
	}
	return fmt.Sprintf("export: %s: %s", e.Kind, e.Reason)
}

func (e *Error) Unwrap() error { return e.Cause }

func ioError(reason string, cause error) *Error {
	return &Error{Kind: ErrIO, Reason: reason, Cause: cause}
}

func serializationError(reason string, cause error) *Error {
	return &Error{Kind: ErrSerialization, Reason: reason, Cause: cause}
}

// NotAvailable builds a FeatureNotAvailable error for sinks that are
// named but not implemented in this repository (chart, document-store).
func NotAvailable(feature string) *Error {
	return &Error{Kind: ErrFeatureNotAvailable, Reason: feature + " is not implemented in this build"}
}
