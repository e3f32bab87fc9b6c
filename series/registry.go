package series

import (
	"github.com/arloliu/telelog/errs"
	"github.com/arloliu/telelog/format"
)

// Registry maps series ids to the series being built during a decode.
//
// Note: Registry is NOT thread-safe. It is owned by a single decode call.
type Registry struct {
	series map[uint16]*Series
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{series: make(map[uint16]*Series)}
}

// Register inserts a new, empty series under id, replacing any series
// previously registered under the same id. Values of the replaced series are
// not carried over.
func (r *Registry) Register(id uint16, name, unit string, typ format.ValueType, defTime uint64) *Series {
	s := New(id, name, unit, typ, defTime)
	r.series[id] = s

	return s
}

// Resolve returns the series registered under id.
func (r *Registry) Resolve(id uint16) (*Series, error) {
	s, ok := r.series[id]
	if !ok {
		return nil, errs.NewUnknownSeries(id)
	}

	return s, nil
}

// Contains reports whether id has been registered.
func (r *Registry) Contains(id uint16) bool {
	_, ok := r.series[id]
	return ok
}

// InsertValue stores v at ts in the series registered under id.
func (r *Registry) InsertValue(id uint16, ts uint64, v Value) error {
	s, err := r.Resolve(id)
	if err != nil {
		return err
	}
	s.insert(ts, v)

	return nil
}

// Len returns the number of registered series.
func (r *Registry) Len() int {
	return len(r.series)
}
