package selection

// Mutator computes the selection that results from toggling a node.
//
// Every Toggle method is pure: the current container is read, never edited,
// and the replacement is returned along with whether anything changed.
// Toggling a node the policy does not allow is a no-op.
type Mutator[N any, ID comparable, V comparable] struct {
	Resolver Resolver[N, ID, V]
	Policy   Policy
}

// NewMutator returns a Mutator for r and p.
func NewMutator[N any, ID comparable, V comparable](r Resolver[N, ID, V], p Policy) Mutator[N, ID, V] {
	return Mutator[N, ID, V]{Resolver: r, Policy: p}
}

// IsSelectable reports whether n can be toggled under the mutator's policy.
func (m Mutator[N, ID, V]) IsSelectable(n N) bool {
	return IsSelectable(m.Resolver.Accessor(), n, m.Policy)
}

// ToggleSingle replaces cur with n's value. A single selection is never
// cleared, so toggling the selected node leaves it selected.
func (m Mutator[N, ID, V]) ToggleSingle(n N, cur V) (V, bool) {
	if !m.IsSelectable(n) {
		return cur, false
	}
	v := m.Resolver.ValueOf(n)
	return v, v != cur
}

// ToggleOptional clears cur if it denotes n and otherwise replaces it with
// n's value.
func (m Mutator[N, ID, V]) ToggleOptional(n N, cur Optional[V]) (Optional[V], bool) {
	if !m.IsSelectable(n) {
		return cur, false
	}
	v := m.Resolver.ValueOf(n)
	if cur.Valid && cur.Value == v {
		return None[V](), true
	}
	return Some(v), true
}

// ToggleMulti flips n's membership in cur.
//
// Under Cascading the flip covers n and all of its descendants, decided once
// by n's own state: if n is selected the whole subtree is removed, otherwise
// the whole subtree is added. A partially selected subtree therefore becomes
// fully selected or fully cleared. Other policies change exactly one member.
//
// n is treated as a root for the depth bound; use ToggleMultiAt for a node
// deeper in the forest.
func (m Mutator[N, ID, V]) ToggleMulti(n N, cur Set[V]) (Set[V], bool) {
	return m.ToggleMultiAt(n, 0, cur)
}

// ToggleMultiAt is ToggleMulti for a node at the given depth. A cascade stops
// at the accessor's depth bound, so it covers only nodes a forest walk visits.
func (m Mutator[N, ID, V]) ToggleMultiAt(n N, depth int, cur Set[V]) (Set[V], bool) {
	if !m.IsSelectable(n) {
		return cur, false
	}
	v := m.Resolver.ValueOf(n)
	selected := cur.Has(v)

	if !m.Policy.Cascades() {
		if selected {
			return cur.Without(v), true
		}
		return cur.With(v), true
	}

	next := cur.Clone()
	for d := range m.Resolver.Accessor().SubtreeAt(n, depth) {
		dv := m.Resolver.ValueOf(d)
		if selected {
			delete(next, dv)
		} else {
			next[dv] = struct{}{}
		}
	}
	return next, !next.Equal(cur)
}
