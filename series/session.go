package series

import (
	"slices"

	"github.com/arloliu/telelog/internal/collision"
	"github.com/arloliu/telelog/internal/hash"
)

// Session is the decoded content of one telemetry log: a name, a start
// timestamp and the series registered while decoding.
//
// A Session is immutable and safe for concurrent use.
type Session struct {
	name      string
	startTime uint64
	series    map[uint16]*Series
	ids       []uint16           // ascending
	byName    *collision.Tracker // ids per name, ascending
}

// NewSession seals the registry's series into a read-only session.
//
// The registry must not be used after this call.
func NewSession(name string, startTime uint64, reg *Registry) *Session {
	if reg == nil {
		reg = NewRegistry()
	}

	s := &Session{
		name:      name,
		startTime: startTime,
		series:    reg.series,
		ids:       make([]uint16, 0, len(reg.series)),
		byName:    collision.NewTracker(),
	}
	reg.series = nil

	for id, ser := range s.series {
		ser.seal()
		s.ids = append(s.ids, id)
	}
	slices.Sort(s.ids)

	for _, id := range s.ids {
		name := s.series[id].Name
		s.byName.Track(name, hash.ID(name), id)
	}

	return s
}

// Name returns the session name from the log header.
func (s *Session) Name() string {
	return s.name
}

// StartTime returns the start timestamp from the log header.
func (s *Session) StartTime() uint64 {
	return s.startTime
}

// Len returns the number of series.
func (s *Session) Len() int {
	return len(s.ids)
}

// SeriesIDs returns the series ids in ascending order.
func (s *Session) SeriesIDs() []uint16 {
	return slices.Clone(s.ids)
}

// Series returns the series registered under id.
func (s *Session) Series(id uint16) (*Series, bool) {
	ser, ok := s.series[id]
	return ser, ok
}

// SeriesByName returns the series with the given name. When several series
// share a name the one with the lowest id wins.
func (s *Session) SeriesByName(name string) (*Series, bool) {
	ids := s.byName.Lookup(name, hash.ID(name))
	if len(ids) == 0 {
		return nil, false
	}

	return s.series[ids[0]], true
}

// HasNameCollision reports whether two distinct series names share an
// xxHash64 value. Lookups by name stay exact either way.
func (s *Session) HasNameCollision() bool {
	return s.byName.HasCollision()
}

// DuplicateNames returns the names carried by more than one series.
func (s *Session) DuplicateNames() []string {
	return slices.Clone(s.byName.Duplicates())
}

// AllSeries returns every series in ascending id order.
func (s *Session) AllSeries() []*Series {
	out := make([]*Series, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.series[id])
	}

	return out
}

// DisplayableSeries returns the numeric series in ascending id order.
// Text series cannot be plotted and are left out.
func (s *Session) DisplayableSeries() []*Series {
	out := make([]*Series, 0, len(s.ids))
	for _, id := range s.ids {
		if ser := s.series[id]; ser.IsDisplayable() {
			out = append(out, ser)
		}
	}

	return out
}

// Fingerprint returns an xxHash64 over the session header, series metadata
// and every point. Two sessions with equal content have equal fingerprints.
func (s *Session) Fingerprint() uint64 {
	f := hash.NewFingerprint()
	f.String(s.name)
	f.Uint64(s.startTime)

	for _, id := range s.ids {
		ser := s.series[id]
		f.Uint16(ser.ID)
		f.String(ser.Name)
		f.String(ser.Unit)
		f.Uint64(uint64(ser.Type))
		f.Uint64(ser.DefinitionTime)
		f.Uint64(uint64(ser.Len()))

		for ts, v := range ser.All() {
			f.Uint64(ts)
			if num, ok := v.Float(); ok {
				f.Float64(num)
			} else {
				text, _ := v.Text()
				f.String(text)
			}
		}
	}

	return f.Sum64()
}
