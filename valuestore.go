package gridtree

// storedValue is the canonical, address-stable copy of one inserted value.
// Bucket lists hold pointers to storedValue rather than copies of Value, so
// relocating or re-balancing a node never invalidates an in-flight
// reference: the pointer stays valid until explicitly removed from the
// store (spec §4.1).
type storedValue struct {
	id    uint64
	value Value
}

// valueStore owns exactly one copy of each stored value, keyed by id.
type valueStore struct {
	byID map[uint64]*storedValue
}

func newValueStore() *valueStore {
	return &valueStore{byID: map[uint64]*storedValue{}}
}

// get returns the stored value for id, if present.
func (s *valueStore) get(id uint64) (*storedValue, bool) {
	sv, ok := s.byID[id]
	return sv, ok
}

// put stores v under its id, returning the (possibly pre-existing, address-
// stable) storedValue handle. Matches the source's `values_[id] = value`:
// every call refreshes the canonical copy, new id or not.
func (s *valueStore) put(v Value) *storedValue {
	id := v.ID()
	sv, ok := s.byID[id]
	if !ok {
		sv = &storedValue{id: id}
		s.byID[id] = sv
	}
	sv.value = v
	return sv
}

// remove erases id from the store.
func (s *valueStore) remove(id uint64) {
	delete(s.byID, id)
}

// size returns the number of distinct stored ids.
func (s *valueStore) size() int { return len(s.byID) }

// clear empties the store.
func (s *valueStore) clear() { s.byID = map[uint64]*storedValue{} }

// all returns every stored value, in unspecified order.
func (s *valueStore) all() []*storedValue {
	out := make([]*storedValue, 0, len(s.byID))
	for _, sv := range s.byID {
		out = append(out, sv)
	}
	return out
}
