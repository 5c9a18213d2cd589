package selection

import "github.com/go-drift/treepicker/pkg/tree"

// Mode records what a selection value stores.
type Mode int

const (
	// ByIdentity selections store node identities.
	ByIdentity Mode = iota
	// ByValue selections store the nodes themselves.
	ByValue
)

func (m Mode) String() string {
	if m == ByValue {
		return "by-value"
	}
	return "by-identity"
}

// Resolver maps between nodes of type N and selection values of type V.
//
// Build one with NewIdentityResolver or NewValueResolver. The zero value is
// not usable.
type Resolver[N any, ID comparable, V comparable] struct {
	acc     tree.Accessor[N, ID]
	mode    Mode
	valueOf func(N) V
}

// NewIdentityResolver returns a resolver whose selection values are node
// identities.
func NewIdentityResolver[N any, ID comparable](acc tree.Accessor[N, ID]) Resolver[N, ID, ID] {
	return Resolver[N, ID, ID]{
		acc:     acc,
		mode:    ByIdentity,
		valueOf: acc.Identity,
	}
}

// NewValueResolver returns a resolver whose selection values are the nodes
// themselves. N must be comparable. Lookups still walk the forest so that a
// stored node is found only while it is part of it.
func NewValueResolver[N comparable, ID comparable](acc tree.Accessor[N, ID]) Resolver[N, ID, N] {
	return Resolver[N, ID, N]{
		acc:     acc,
		mode:    ByValue,
		valueOf: func(n N) N { return n },
	}
}

// Mode reports what the resolver's selection values store.
func (r Resolver[N, ID, V]) Mode() Mode {
	return r.mode
}

// Accessor returns the tree accessor the resolver walks.
func (r Resolver[N, ID, V]) Accessor() tree.Accessor[N, ID] {
	return r.acc
}

// ValueOf returns the selection value that denotes n.
func (r Resolver[N, ID, V]) ValueOf(n N) V {
	return r.valueOf(n)
}

// IsSelected reports whether n is the node v denotes.
func (r Resolver[N, ID, V]) IsSelected(n N, v V) bool {
	return r.valueOf(n) == v
}

// IsMember reports whether n is denoted by a member of set.
func (r Resolver[N, ID, V]) IsMember(n N, set Set[V]) bool {
	return set.Has(r.valueOf(n))
}

// Resolve returns the first node in preorder that v denotes. A value that
// matches nothing in the forest reports false, including a ByValue node that
// has since been removed from the forest.
func (r Resolver[N, ID, V]) Resolve(roots []N, v V) (N, bool) {
	return r.acc.Find(roots, func(n N) bool { return r.valueOf(n) == v })
}

// ResolveAll returns every node denoted by a member of set, in preorder.
// It walks the forest once regardless of the size of set.
func (r Resolver[N, ID, V]) ResolveAll(roots []N, set Set[V]) []N {
	if len(set) == 0 {
		return nil
	}
	var out []N
	for n := range r.acc.Preorder(roots) {
		if set.Has(r.valueOf(n)) {
			out = append(out, n)
		}
	}
	return out
}

// Unresolved returns the members of set that no node in the forest denotes.
// Order is unspecified.
func (r Resolver[N, ID, V]) Unresolved(roots []N, set Set[V]) []V {
	if len(set) == 0 {
		return nil
	}
	remaining := set.Clone()
	for n := range r.acc.Preorder(roots) {
		delete(remaining, r.valueOf(n))
		if len(remaining) == 0 {
			return nil
		}
	}
	return remaining.Values()
}
