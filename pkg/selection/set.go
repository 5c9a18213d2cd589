package selection

// Set is an unordered collection of unique selection values.
// A nil Set is empty and safe to read.
type Set[V comparable] map[V]struct{}

// NewSet returns a set holding values. Duplicates collapse.
func NewSet[V comparable](values ...V) Set[V] {
	s := make(Set[V], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether v is in the set.
func (s Set[V]) Has(v V) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values in the set.
func (s Set[V]) Len() int {
	return len(s)
}

// Clone returns a copy of the set. Cloning a nil set yields an empty set.
func (s Set[V]) Clone() Set[V] {
	out := make(Set[V], len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Values returns the members in unspecified order.
func (s Set[V]) Values() []V {
	out := make([]V, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

// Equal reports whether s and other hold the same members.
func (s Set[V]) Equal(other Set[V]) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// With returns a copy of the set with values added.
func (s Set[V]) With(values ...V) Set[V] {
	out := s.Clone()
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}

// Without returns a copy of the set with values removed.
func (s Set[V]) Without(values ...V) Set[V] {
	out := s.Clone()
	for _, v := range values {
		delete(out, v)
	}
	return out
}

// Optional holds zero or one selection value.
type Optional[V any] struct {
	Value V
	Valid bool
}

// Some returns an Optional holding v.
func Some[V any](v V) Optional[V] {
	return Optional[V]{Value: v, Valid: true}
}

// None returns an empty Optional.
func None[V any]() Optional[V] {
	return Optional[V]{}
}

// Get returns the held value and whether one is present.
func (o Optional[V]) Get() (V, bool) {
	return o.Value, o.Valid
}
