// Package collision indexes series names by hash and reports names that
// collide or repeat.
package collision

// Tracker maps name hashes to the series ids carrying that name.
//
// Two distinct names with the same hash share a bucket; lookups compare the
// stored name to resolve them. The same name registered under several ids is
// a duplicate, not a collision.
type Tracker struct {
	buckets      map[uint64][]entry
	duplicates   []string
	hasCollision bool
}

type entry struct {
	name string
	ids  []uint16
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{buckets: make(map[uint64][]entry)}
}

// Track records that the series id carries name, whose hash is hash.
//
// Ids for one name are kept in the order they were tracked.
func (t *Tracker) Track(name string, hash uint64, id uint16) {
	bucket := t.buckets[hash]
	for i := range bucket {
		if bucket[i].name == name {
			if len(bucket[i].ids) == 1 {
				t.duplicates = append(t.duplicates, name)
			}
			bucket[i].ids = append(bucket[i].ids, id)

			return
		}
	}

	if len(bucket) > 0 {
		t.hasCollision = true
	}
	t.buckets[hash] = append(bucket, entry{name: name, ids: []uint16{id}})
}

// Lookup returns the ids tracked for name, or nil.
func (t *Tracker) Lookup(name string, hash uint64) []uint16 {
	for _, e := range t.buckets[hash] {
		if e.name == name {
			return e.ids
		}
	}

	return nil
}

// HasCollision reports whether two distinct names hashed to the same value.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Duplicates returns the names tracked under more than one id, in the order
// the second id was seen.
func (t *Tracker) Duplicates() []string {
	return t.duplicates
}
