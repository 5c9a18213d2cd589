package picker

import (
	"strings"

	tperrors "github.com/go-drift/treepicker/pkg/errors"
	"github.com/go-drift/treepicker/pkg/selection"
	"github.com/go-drift/treepicker/pkg/tree"
)

// Row is the view model for one visible node.
type Row[N any] struct {
	Node       N
	Depth      int
	Label      string
	Leaf       bool
	Selectable bool
	Selected   bool
}

// base holds the parts every variant shares.
type base[N any, ID comparable, V comparable] struct {
	presenter
	roots    []N
	resolver selection.Resolver[N, ID, V]
	mutator  selection.Mutator[N, ID, V]
	cfg      Config[N]
}

func newBase[N any, ID comparable, V comparable](roots []N, r selection.Resolver[N, ID, V], cfg Config[N]) base[N, ID, V] {
	return base[N, ID, V]{
		roots:    roots,
		resolver: r,
		mutator:  selection.NewMutator(r, cfg.Policy),
		cfg:      cfg.withDefaults(identityLabel[N](r.Accessor().Identity)),
	}
}

func (b *base[N, ID, V]) accessor() tree.Accessor[N, ID] {
	return b.resolver.Accessor()
}

// Title returns the picker's heading.
func (b *base[N, ID, V]) Title() string {
	return b.cfg.Title
}

// Policy returns the selection policy.
func (b *base[N, ID, V]) Policy() selection.Policy {
	return b.cfg.Policy
}

// Roots returns the forest the picker shows.
func (b *base[N, ID, V]) Roots() []N {
	return b.roots
}

// SetRoots replaces the forest, e.g. after the application reloads its data.
// The selection is left as is; values that no longer match resolve to
// nothing.
func (b *base[N, ID, V]) SetRoots(roots []N) {
	b.roots = roots
}

// IsSelectable reports whether n can be toggled.
func (b *base[N, ID, V]) IsSelectable(n N) bool {
	return b.mutator.IsSelectable(n)
}

// Label returns the row text for n.
func (b *base[N, ID, V]) Label(n N) string {
	return b.cfg.Label(n)
}

func (b *base[N, ID, V]) rows(selected func(N) bool) []Row[N] {
	var out []Row[N]
	truncated := b.accessor().Walk(b.roots, func(e tree.Entry[N]) bool {
		out = append(out, Row[N]{
			Node:       e.Node,
			Depth:      e.Depth,
			Label:      b.cfg.Label(e.Node),
			Leaf:       e.Leaf,
			Selectable: b.mutator.IsSelectable(e.Node),
			Selected:   selected(e.Node),
		})
		return true
	})
	if truncated && b.cfg.Debug {
		tperrors.Report(&tperrors.PickerError{
			Op:   "picker.Rows",
			Kind: tperrors.KindDepth,
			Err:  tperrors.ErrDepthExceeded,
		})
	}
	return out
}

func (b *base[N, ID, V]) summary(nodes []N) string {
	if len(nodes) == 0 {
		return b.cfg.EmptyLabel
	}
	labels := make([]string, len(nodes))
	for i, n := range nodes {
		labels[i] = b.cfg.Label(n)
	}
	return strings.Join(labels, ", ")
}

// depthOf returns n's depth in the forest, or 0 for a node outside it.
func (b *base[N, ID, V]) depthOf(n N) int {
	acc := b.accessor()
	id := acc.Identity(n)
	depth, _ := acc.DepthOf(b.roots, func(m N) bool { return acc.Identity(m) == id })
	return depth
}

func (b *base[N, ID, V]) path(v V) []N {
	return b.accessor().Path(b.roots, func(n N) bool { return b.resolver.IsSelected(n, v) })
}

func (b *base[N, ID, V]) reportUnresolved(op string, v V) {
	if !b.cfg.Debug {
		return
	}
	tperrors.Report(&tperrors.PickerError{
		Op:         op,
		Kind:       tperrors.KindUnresolved,
		Err:        tperrors.ErrUnresolved,
		Value:      v,
		StackTrace: tperrors.CaptureStack(),
	})
}
