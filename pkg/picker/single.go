package picker

import "github.com/go-drift/treepicker/pkg/selection"

// Single is a picker that always holds exactly one value.
//
// Its policy must be LeafOnly or AllNodes. Toggling a selectable node
// replaces the value and dismisses the options list; there is no way to
// clear it.
type Single[N any, ID comparable, V comparable] struct {
	base[N, ID, V]
	binding selection.Binding[V]
}

// NewSingle returns a Single picker over roots.
func NewSingle[N any, ID comparable, V comparable](
	roots []N,
	r selection.Resolver[N, ID, V],
	b selection.Binding[V],
	cfg Config[N],
) (*Single[N, ID, V], error) {
	if err := validate("picker.NewSingle", cfg.Policy, b, false); err != nil {
		return nil, err
	}
	return &Single[N, ID, V]{base: newBase(roots, r, cfg), binding: b}, nil
}

// Value returns the current selection value.
func (p *Single[N, ID, V]) Value() V {
	return p.binding.Get()
}

// IsSelected reports whether n is the selected node.
func (p *Single[N, ID, V]) IsSelected(n N) bool {
	return p.resolver.IsSelected(n, p.binding.Get())
}

// Toggle selects n if it is selectable and reports whether n was accepted.
// The binding is written only when the value changes.
func (p *Single[N, ID, V]) Toggle(n N) bool {
	if !p.IsSelectable(n) {
		return false
	}
	if next, changed := p.mutator.ToggleSingle(n, p.binding.Get()); changed {
		p.binding.Set(next)
	}
	p.Dismiss()
	return true
}

// Selected returns the node the current value denotes.
func (p *Single[N, ID, V]) Selected() (N, bool) {
	v := p.binding.Get()
	n, ok := p.resolver.Resolve(p.roots, v)
	if !ok {
		p.reportUnresolved("picker.Single.Selected", v)
	}
	return n, ok
}

// Summary returns the label of the selected node, or the empty label when
// the value matches no node.
func (p *Single[N, ID, V]) Summary() string {
	n, ok := p.Selected()
	if !ok {
		return p.cfg.EmptyLabel
	}
	return p.cfg.Label(n)
}

// Breadcrumb returns the path from a root to the selected node.
func (p *Single[N, ID, V]) Breadcrumb() []N {
	return p.path(p.binding.Get())
}

// Rows returns the flattened forest with per-row state.
func (p *Single[N, ID, V]) Rows() []Row[N] {
	v := p.binding.Get()
	return p.rows(func(n N) bool { return p.resolver.IsSelected(n, v) })
}
