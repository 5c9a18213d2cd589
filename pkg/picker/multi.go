package picker

import "github.com/go-drift/treepicker/pkg/selection"

// Multi is a picker that holds a set of values.
//
// Under Cascading a toggle applies to the node's whole subtree. The options
// list stays open across toggles.
type Multi[N any, ID comparable, V comparable] struct {
	base[N, ID, V]
	binding selection.Binding[selection.Set[V]]
}

// NewMulti returns a Multi picker over roots. Any policy is accepted.
func NewMulti[N any, ID comparable, V comparable](
	roots []N,
	r selection.Resolver[N, ID, V],
	b selection.Binding[selection.Set[V]],
	cfg Config[N],
) (*Multi[N, ID, V], error) {
	if err := validate("picker.NewMulti", cfg.Policy, b, true); err != nil {
		return nil, err
	}
	return &Multi[N, ID, V]{base: newBase(roots, r, cfg), binding: b}, nil
}

// Value returns the current selection set. Callers must not modify it.
func (p *Multi[N, ID, V]) Value() selection.Set[V] {
	return p.binding.Get()
}

// IsSelected reports whether n is in the selection.
func (p *Multi[N, ID, V]) IsSelected(n N) bool {
	return p.resolver.IsMember(n, p.binding.Get())
}

// Toggle flips n's membership, or its subtree's under Cascading, and
// reports whether the selection changed.
func (p *Multi[N, ID, V]) Toggle(n N) bool {
	next, changed := p.mutator.ToggleMultiAt(n, p.depthOf(n), p.binding.Get())
	if !changed {
		return false
	}
	p.binding.Set(next)
	return true
}

// SelectAll selects every selectable node in the forest.
func (p *Multi[N, ID, V]) SelectAll() {
	cur := p.binding.Get()
	next := cur.Clone()
	for n := range p.accessor().Preorder(p.roots) {
		if p.mutator.IsSelectable(n) {
			next[p.resolver.ValueOf(n)] = struct{}{}
		}
	}
	if !next.Equal(cur) {
		p.binding.Set(next)
	}
}

// Clear empties the selection.
func (p *Multi[N, ID, V]) Clear() {
	if p.binding.Get().Len() > 0 {
		p.binding.Set(selection.NewSet[V]())
	}
}

// SelectedNodes returns the nodes the selection denotes, in preorder.
// Values that match no node are skipped.
func (p *Multi[N, ID, V]) SelectedNodes() []N {
	cur := p.binding.Get()
	if p.cfg.Debug {
		for _, v := range p.resolver.Unresolved(p.roots, cur) {
			p.reportUnresolved("picker.Multi.SelectedNodes", v)
		}
	}
	return p.resolver.ResolveAll(p.roots, cur)
}

// Summary joins the labels of the selected nodes, or returns the empty
// label when none resolve.
func (p *Multi[N, ID, V]) Summary() string {
	return p.summary(p.SelectedNodes())
}

// Rows returns the flattened forest with per-row state.
func (p *Multi[N, ID, V]) Rows() []Row[N] {
	cur := p.binding.Get()
	return p.rows(func(n N) bool { return p.resolver.IsMember(n, cur) })
}
