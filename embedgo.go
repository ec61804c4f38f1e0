package embedgo

// Recoder maps string keys to integer ids. Keys the Recoder does not know
// are simply left out of the id index; a miss is not an error.
type Recoder interface {
	// WordID returns the id assigned to key, and whether key is known.
	WordID(key string) (uint32, bool)
}

// Weighter assigns importance weights to integer ids, e.g. inverse document
// frequencies.
type Weighter interface {
	// Weight returns the weight of id. Unknown ids weigh zero.
	Weight(id uint32) float32
}

// LoadStats summarizes a completed table load.
type LoadStats struct {
	Lines      int // input lines consumed, including blank ones
	Keys       int // unique keys stored
	Recoded    int // keys additionally registered in the id index
	Duplicates int // duplicate keys skipped
}

// Store is an in-memory embedding store mapping string keys, and optionally
// integer ids, to L2-normalized float32 vectors. A Store is built by Load,
// is immutable afterwards and safe for concurrent readers. The zero value
// is not usable.
type Store struct {
	dim    int
	byKey  map[string][]float32
	byID   map[uint32][]float32
	zero   []float32
	stats  LoadStats
	logger *Logger
}

// Dimension returns the vector dimensionality fixed by the first record of
// the table, or 0 for a store loaded from empty input.
func (s *Store) Dimension() int { return s.dim }

// Len returns the number of stored keys.
func (s *Store) Len() int { return len(s.byKey) }

// Stats returns the statistics of the load that built the store.
func (s *Store) Stats() LoadStats { return s.stats }

// Vector returns the vector stored for key, and whether key is known.
// The returned slice is the store's own; treat it as read-only.
func (s *Store) Vector(key string) ([]float32, bool) {
	vec, ok := s.byKey[key]
	return vec, ok
}

// VectorByID returns the vector registered for id, and whether id is known.
// Registered vectors are shared with the key index, not copied.
// The returned slice is the store's own; treat it as read-only.
func (s *Store) VectorByID(id uint32) ([]float32, bool) {
	vec, ok := s.byID[id]
	return vec, ok
}

// VectorOrZero returns the vector stored for key, or the zero vector of the
// store's dimension if key is unknown. It never returns nil for a store with
// a dimension. The returned slice is the store's own; treat it as read-only.
func (s *Store) VectorOrZero(key string) []float32 {
	if vec, ok := s.byKey[key]; ok {
		return vec
	}

	return s.zero
}
