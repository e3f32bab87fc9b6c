// Package series is the in-memory model produced by decoding a telemetry log.
//
// A Registry collects series while a log is being decoded: definitions
// register (or replace) a Series under its id, and value records insert
// points into the registered Series. Once decoding succeeds the registry is
// sealed into a Session, which is read-only from then on and safe for
// concurrent readers.
//
// Values within a Series are keyed by timestamp. Inserting at an existing
// timestamp replaces the earlier value, and points are always exposed in
// ascending timestamp order regardless of insertion order.
package series
