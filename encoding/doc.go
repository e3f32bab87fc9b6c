// Package encoding provides Cursor, a forward-only reader of fixed-width
// fields over an immutable telemetry log buffer.
//
// Every read is bounds-checked before any byte is consumed: a read that
// fails with errs.ErrInsufficientData or errs.ErrInvalidUTF8 leaves the
// cursor position exactly where it was. The cursor never rewinds.
//
// Strings returned by the cursor are copies, so the underlying buffer may be
// reused once decoding finishes.
package encoding
