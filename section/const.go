package section

// Field widths in bytes.
const (
	SeriesIDSize  = 2  // record series id (uint16)
	NameLenSize   = 1  // length prefix of header and definition names
	TimestampSize = 8  // uint64 timestamps
	ValueSize     = 8  // IEEE-754 float64
	TypeTagSize   = 1  // definition type tag
	UnitSize      = 16 // fixed, NUL-padded unit string
	TextLenSize   = 4  // signed int32 text length
)

// Minimum payload sizes, measured after the record's series id.
const (
	// DefinitionMinSize is the size of a definition payload with an empty name.
	DefinitionMinSize = NameLenSize + SeriesIDSize + TimestampSize + TypeTagSize + UnitSize // 28
	// NumericValueSize is the size of a numeric value payload.
	NumericValueSize = TimestampSize + ValueSize // 16
	// TextValueMinSize is the minimum remaining size before a text value prefix is read.
	//
	// The prefix itself is 12 bytes; the check mirrors the recording format's
	// historical reader, and the prefix reads are still bounds-checked.
	TextValueMinSize = 9
)

// DefinitionSeriesID is the reserved series id announcing a definition record.
const DefinitionSeriesID uint16 = 0

// DefinitionSize returns the full definition payload size for a name of nameLen bytes.
func DefinitionSize(nameLen int) int {
	return DefinitionMinSize + nameLen
}
