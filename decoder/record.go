package decoder

import (
	"fmt"

	"github.com/arloliu/telelog/encoding"
	"github.com/arloliu/telelog/errs"
	"github.com/arloliu/telelog/format"
	"github.com/arloliu/telelog/section"
	"github.com/arloliu/telelog/series"
)

// Record is one decoded record of the log.
//
// It is one of *DefinitionRecord, *NumericRecord or *TextRecord.
type Record interface {
	// SeriesID returns the series the record registers or addresses.
	SeriesID() uint16
	// Apply applies the record to the registry.
	Apply(reg *series.Registry) error
}

// DefinitionRecord registers (or replaces) a series.
type DefinitionRecord struct {
	ID        uint16
	Name      string
	Unit      string
	Type      format.ValueType
	Timestamp uint64
}

func (r *DefinitionRecord) SeriesID() uint16 { return r.ID }

func (r *DefinitionRecord) Apply(reg *series.Registry) error {
	reg.Register(r.ID, r.Name, r.Unit, r.Type, r.Timestamp)
	return nil
}

// NumericRecord is a value of a numeric series.
type NumericRecord struct {
	ID        uint16
	Timestamp uint64
	Value     float64
}

func (r *NumericRecord) SeriesID() uint16 { return r.ID }

func (r *NumericRecord) Apply(reg *series.Registry) error {
	return reg.InsertValue(r.ID, r.Timestamp, series.NumericValue(r.Value))
}

// TextRecord is a value of a text series.
type TextRecord struct {
	ID        uint16
	Timestamp uint64
	Text      string
}

func (r *TextRecord) SeriesID() uint16 { return r.ID }

func (r *TextRecord) Apply(reg *series.Registry) error {
	return reg.InsertValue(r.ID, r.Timestamp, series.TextValue(r.Text))
}

// RecordDecoder reads records from a cursor. Value records are decoded with
// the layout of the declared type of the series they address, looked up in reg.
//
// Note: The RecordDecoder is NOT thread-safe.
type RecordDecoder struct {
	cur *encoding.Cursor
	reg *series.Registry
}

// NewRecordDecoder creates a record decoder reading from cur and resolving
// series ids against reg.
func NewRecordDecoder(cur *encoding.Cursor, reg *series.Registry) *RecordDecoder {
	return &RecordDecoder{cur: cur, reg: reg}
}

// Next decodes the next record. It does not apply it to the registry.
func (d *RecordDecoder) Next() (Record, error) {
	id, err := d.cur.ReadUint16()
	if err != nil {
		return nil, fmt.Errorf("series id: %w", err)
	}

	if id == section.DefinitionSeriesID {
		return d.decodeDefinition()
	}

	s, err := d.reg.Resolve(id)
	if err != nil {
		return nil, err
	}

	switch s.Type {
	case format.TypeNumeric:
		return d.decodeNumeric(id)
	default:
		return d.decodeText(id)
	}
}

func (d *RecordDecoder) decodeDefinition() (Record, error) {
	if rem := d.cur.Remaining(); rem < section.DefinitionMinSize {
		return nil, errs.NewInsufficientData("series definition", section.DefinitionMinSize, rem)
	}

	nameLen, err := d.cur.PeekUint8()
	if err != nil {
		return nil, err
	}

	need := section.DefinitionSize(int(nameLen))
	if rem := d.cur.Remaining(); rem < need {
		return nil, errs.NewInsufficientData("series definition name", need, rem)
	}

	// length byte and name are consumed together
	name, err := d.cur.ReadLengthPrefixedString()
	if err != nil {
		return nil, fmt.Errorf("series definition name: %w", err)
	}

	rec := &DefinitionRecord{Name: name}
	if rec.ID, err = d.cur.ReadUint16(); err != nil {
		return nil, err
	}
	if rec.Timestamp, err = d.cur.ReadUint64(); err != nil {
		return nil, err
	}

	tag, err := d.cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	rec.Type = format.ValueTypeFromTag(tag)

	if rec.Unit, err = d.cur.ReadFixedString(section.UnitSize); err != nil {
		return nil, fmt.Errorf("series definition unit: %w", err)
	}

	return rec, nil
}

func (d *RecordDecoder) decodeNumeric(id uint16) (Record, error) {
	if rem := d.cur.Remaining(); rem < section.NumericValueSize {
		return nil, errs.NewInsufficientData(fmt.Sprintf("numeric value of series %d", id), section.NumericValueSize, rem)
	}

	rec := &NumericRecord{ID: id}

	var err error
	if rec.Timestamp, err = d.cur.ReadUint64(); err != nil {
		return nil, err
	}
	if rec.Value, err = d.cur.ReadFloat64(); err != nil {
		return nil, err
	}

	return rec, nil
}

func (d *RecordDecoder) decodeText(id uint16) (Record, error) {
	if rem := d.cur.Remaining(); rem < section.TextValueMinSize {
		return nil, errs.NewInsufficientData(fmt.Sprintf("text value of series %d", id), section.TextValueMinSize, rem)
	}

	rec := &TextRecord{ID: id}

	var err error
	if rec.Timestamp, err = d.cur.ReadUint64(); err != nil {
		return nil, fmt.Errorf("text value timestamp: %w", err)
	}

	length, err := d.cur.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("text value length: %w", err)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: %d for series %d", errs.ErrInvalidTextLength, length, id)
	}

	if rec.Text, err = d.cur.ReadFixedString(int(length)); err != nil {
		return nil, fmt.Errorf("text value of series %d: %w", id, err)
	}

	return rec, nil
}
