package domain

// IDSet is a set of string ids that remembers insertion order.
// The zero value is an empty set ready to use.
type IDSet struct {
	order []string
	index map[string]int
}

// NewIDSet builds a set from ids, keeping the first occurrence of duplicates
func NewIDSet(ids ...string) IDSet {
	var s IDSet
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Has reports membership
func (s IDSet) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of members
func (s IDSet) Len() int {
	return len(s.order)
}

// Add inserts id; adding an existing member is a no-op. Reports whether id was added.
func (s *IDSet) Add(id string) bool {
	if s.Has(id) {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[id] = len(s.order)
	s.order = append(s.order, id)
	return true
}

// Remove deletes id. Reports whether id was a member.
func (s *IDSet) Remove(id string) bool {
	pos, ok := s.index[id]
	if !ok {
		return false
	}
	s.order = append(s.order[:pos], s.order[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.order); i++ {
		s.index[s.order[i]] = i
	}
	return true
}

// Toggle flips membership of id and reports whether it is now a member
func (s *IDSet) Toggle(id string) bool {
	if s.Remove(id) {
		return false
	}
	s.Add(id)
	return true
}

// Slice returns the members oldest-first
func (s IDSet) Slice() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Newest returns the members newest-first
func (s IDSet) Newest() []string {
	out := make([]string, len(s.order))
	for i, id := range s.order {
		out[len(s.order)-1-i] = id
	}
	return out
}

// Clone returns an independent copy
func (s IDSet) Clone() IDSet {
	return NewIDSet(s.order...)
}
