// Package section defines the physical layout of a telemetry log.
//
// A log is a header followed by a flat sequence of records. Every record
// starts with a 2-byte series id; id 0 marks a series definition, any other
// id addresses a value of a previously defined series.
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header                                                  │
//	│  - NameLen (1 byte)                                     │
//	│  - Name (NameLen bytes, UTF-8, NUL-padded)              │
//	│  - StartTime (8 bytes, u64)                             │
//	├─────────────────────────────────────────────────────────┤
//	│ Record (repeated until at most 1 byte remains)         │
//	│  - SeriesID (2 bytes, u16)                              │
//	│  - Payload (layout selected by SeriesID)                │
//	└─────────────────────────────────────────────────────────┘
//
// # Definition Payload (SeriesID == 0)
//
//	Bytes      | Field      | Type   | Description
//	-----------|------------|--------|------------------------------------
//	0          | NameLen    | uint8  | length of Name
//	1..n       | Name       | []byte | UTF-8, trailing NULs stripped
//	n+1..n+2   | SeriesID   | uint16 | id the definition registers
//	n+3..n+10  | Timestamp  | uint64 | definition time
//	n+11       | Type       | uint8  | 0 = numeric, anything else = text
//	n+12..n+27 | Unit       | [16]byte | UTF-8, NUL-padded
//
// # Value Payloads (SeriesID != 0)
//
// The declared type of the addressed series selects the layout; nothing in
// the payload itself identifies its type.
//
//	Numeric: Timestamp (uint64) | Value (float64)
//	Text:    Timestamp (uint64) | Len (int32) | Text (Len bytes, NUL-padded)
package section
