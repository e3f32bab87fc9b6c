package series

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/arloliu/telelog/format"
)

// Series is a named, unit-tagged, single-typed stream of timestamped values.
//
// The metadata fields are fixed when the series is registered. Values are
// added through the Registry while the log is decoded; afterwards the series
// is only read.
type Series struct {
	ID             uint16
	Name           string
	Unit           string
	Type           format.ValueType
	DefinitionTime uint64

	values map[uint64]Value
	sorted []Point // ascending by Ts, rebuilt lazily after insert
	dirty  bool
}

// New creates an empty series.
func New(id uint16, name, unit string, typ format.ValueType, defTime uint64) *Series {
	return &Series{
		ID:             id,
		Name:           name,
		Unit:           unit,
		Type:           typ,
		DefinitionTime: defTime,
		values:         make(map[uint64]Value),
	}
}

// insert stores v at ts, replacing any value already stored at ts.
//
// insert does not check v against the declared type; the decoder picks the
// variant from Type before calling it.
func (s *Series) insert(ts uint64, v Value) {
	s.values[ts] = v
	s.dirty = true
}

// Len returns the number of distinct timestamps.
func (s *Series) Len() int {
	return len(s.values)
}

// IsDisplayable reports whether the series can be plotted.
func (s *Series) IsDisplayable() bool {
	return s.Type == format.TypeNumeric
}

// Value returns the value stored at ts.
func (s *Series) Value(ts uint64) (Value, bool) {
	v, ok := s.values[ts]
	return v, ok
}

// SortedValues returns a copy of all points in ascending timestamp order.
func (s *Series) SortedValues() []Point {
	return slices.Clone(s.points())
}

// Range returns the points with from <= Ts <= to, in ascending order.
func (s *Series) Range(from, to uint64) []Point {
	if from > to {
		return nil
	}

	points := s.points()
	lo := sort.Search(len(points), func(i int) bool { return points[i].Ts >= from })
	hi := sort.Search(len(points), func(i int) bool { return points[i].Ts > to })

	return slices.Clone(points[lo:hi])
}

// All iterates over the points in ascending timestamp order.
func (s *Series) All() iter.Seq2[uint64, Value] {
	points := s.points()

	return func(yield func(uint64, Value) bool) {
		for _, p := range points {
			if !yield(p.Ts, p.Val) {
				return
			}
		}
	}
}

func (s *Series) String() string {
	return fmt.Sprintf("Series '%s' (ID: %d, Unit: %s, type: %s, Start time: %d)",
		s.Name, s.ID, s.Unit, s.Type, s.DefinitionTime)
}

// seal sorts the points so later reads never mutate the series.
func (s *Series) seal() {
	_ = s.points()
}

func (s *Series) points() []Point {
	if !s.dirty && (s.sorted != nil || len(s.values) == 0) {
		return s.sorted
	}

	points := make([]Point, 0, len(s.values))
	for ts, v := range s.values {
		points = append(points, Point{Ts: ts, Val: v})
	}
	slices.SortFunc(points, func(a, b Point) int { return cmp.Compare(a.Ts, b.Ts) })

	s.sorted = points
	s.dirty = false

	return points
}
