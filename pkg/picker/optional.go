package picker

import "github.com/go-drift/treepicker/pkg/selection"

// Optional is a picker that holds zero or one value.
//
// Toggling the selected node clears the selection; toggling any other
// selectable node replaces it. Either way the options list is dismissed.
type Optional[N any, ID comparable, V comparable] struct {
	base[N, ID, V]
	binding selection.Binding[selection.Optional[V]]
}

// NewOptional returns an Optional picker over roots. The policy must be
// LeafOnly or AllNodes.
func NewOptional[N any, ID comparable, V comparable](
	roots []N,
	r selection.Resolver[N, ID, V],
	b selection.Binding[selection.Optional[V]],
	cfg Config[N],
) (*Optional[N, ID, V], error) {
	if err := validate("picker.NewOptional", cfg.Policy, b, false); err != nil {
		return nil, err
	}
	return &Optional[N, ID, V]{base: newBase(roots, r, cfg), binding: b}, nil
}

// Value returns the current selection.
func (p *Optional[N, ID, V]) Value() selection.Optional[V] {
	return p.binding.Get()
}

// IsSelected reports whether n is the selected node.
func (p *Optional[N, ID, V]) IsSelected(n N) bool {
	cur := p.binding.Get()
	return cur.Valid && p.resolver.IsSelected(n, cur.Value)
}

// Toggle selects or clears n and reports whether n was accepted.
func (p *Optional[N, ID, V]) Toggle(n N) bool {
	next, changed := p.mutator.ToggleOptional(n, p.binding.Get())
	if !changed {
		return false
	}
	p.binding.Set(next)
	p.Dismiss()
	return true
}

// Clear empties the selection.
func (p *Optional[N, ID, V]) Clear() {
	if p.binding.Get().Valid {
		p.binding.Set(selection.None[V]())
	}
}

// Selected returns the node the current value denotes. It reports false
// when nothing is selected or the value matches no node.
func (p *Optional[N, ID, V]) Selected() (N, bool) {
	cur := p.binding.Get()
	if !cur.Valid {
		var zero N
		return zero, false
	}
	n, ok := p.resolver.Resolve(p.roots, cur.Value)
	if !ok {
		p.reportUnresolved("picker.Optional.Selected", cur.Value)
	}
	return n, ok
}

// Summary returns the label of the selected node or the empty label.
func (p *Optional[N, ID, V]) Summary() string {
	n, ok := p.Selected()
	if !ok {
		return p.cfg.EmptyLabel
	}
	return p.cfg.Label(n)
}

// Breadcrumb returns the path from a root to the selected node, or nil.
func (p *Optional[N, ID, V]) Breadcrumb() []N {
	cur := p.binding.Get()
	if !cur.Valid {
		return nil
	}
	return p.path(cur.Value)
}

// Rows returns the flattened forest with per-row state.
func (p *Optional[N, ID, V]) Rows() []Row[N] {
	cur := p.binding.Get()
	return p.rows(func(n N) bool { return cur.Valid && p.resolver.IsSelected(n, cur.Value) })
}
