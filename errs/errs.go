// Package errs defines the errors returned while decoding telemetry logs.
//
// Every error produced by the decoder wraps one of the sentinel values below,
// so callers can classify failures with errors.Is regardless of the context
// that was attached on the way up.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData is returned when the buffer ends before a field or record is complete.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrUnknownSeriesID is returned when a value record addresses a series that was never defined.
	ErrUnknownSeriesID = errors.New("unknown series id")
	// ErrInvalidUTF8 is returned when a string field does not hold valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 string")
	// ErrInvalidTextLength is returned when a text value carries a negative length.
	ErrInvalidTextLength = errors.New("invalid text value length")
	// ErrIO is returned when the underlying log file could not be read.
	ErrIO = errors.New("telemetry log i/o error")
	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)

// InsufficientDataError reports which field or record ran out of bytes.
type InsufficientDataError struct {
	Context string // field or record being decoded
	Need    int    // bytes required
	Have    int    // bytes remaining
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: %s (need %d bytes, have %d)", ErrInsufficientData, e.Context, e.Need, e.Have)
}

// Is reports whether target is ErrInsufficientData.
func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// NewInsufficientData creates an InsufficientDataError.
func NewInsufficientData(context string, need, have int) error {
	return &InsufficientDataError{Context: context, Need: need, Have: have}
}

// UnknownSeriesError carries the series id of a value record with no prior definition.
type UnknownSeriesError struct {
	ID uint16
}

func (e *UnknownSeriesError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnknownSeriesID, e.ID)
}

// Is reports whether target is ErrUnknownSeriesID.
func (e *UnknownSeriesError) Is(target error) bool {
	return target == ErrUnknownSeriesID
}

// NewUnknownSeries creates an UnknownSeriesError for id.
func NewUnknownSeries(id uint16) error {
	return &UnknownSeriesError{ID: id}
}
