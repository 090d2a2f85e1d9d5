package props

// Store is the flat attribute bag. Every widget owns one instance; it is
// created empty, mutated only through Set, and never shared.
type Store struct {
	attrs map[Attr]Value
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{attrs: make(map[Attr]Value)}
}

// Get returns the value for key, if set.
func (s *Store) Get(a Attr) (Value, bool) {
	v, ok := s.attrs[a]
	return v, ok
}

// GetOr returns the value for key, or def when absent.
func (s *Store) GetOr(a Attr, def Value) Value {
	if v, ok := s.attrs[a]; ok {
		return v
	}
	return def
}

// Set stores a value for key. Setting never fails.
func (s *Store) Set(a Attr, v Value) {
	s.attrs[a] = v
}

// Del removes a key.
func (s *Store) Del(a Attr) {
	delete(s.attrs, a)
}

// Len returns the number of set attributes.
func (s *Store) Len() int {
	return len(s.attrs)
}
