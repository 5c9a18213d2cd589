// Package session binds a tree document to the picker variant chosen by
// configuration.
package session

import (
	"fmt"
	"slices"

	"github.com/go-drift/treepicker/cmd/treepicker/internal/config"
	"github.com/go-drift/treepicker/cmd/treepicker/internal/treefile"
	"github.com/go-drift/treepicker/pkg/picker"
	"github.com/go-drift/treepicker/pkg/selection"
)

// Picker is the part of every picker variant a terminal view uses.
type Picker interface {
	Title() string
	Rows() []picker.Row[*treefile.Node]
	IsSelectable(*treefile.Node) bool
	IsSelected(*treefile.Node) bool
	Toggle(*treefile.Node) bool
	Summary() string
	Open()
	Dismiss()
	IsOpen() bool
}

// Session is a picker over a loaded document.
type Session struct {
	Picker Picker
	Mode   config.Mode
	Doc    *treefile.Document

	index  map[string]*treefile.Node
	values func() []string
}

// New builds the picker cfg asks for. initial seeds the selection with node
// ids; ids not in the document are kept and simply match nothing. Single
// mode needs exactly one initial id, and falls back to the first selectable
// node when none is given.
func New(doc *treefile.Document, cfg *config.Resolved, initial []string) (*Session, error) {
	acc := treefile.Accessor(cfg.MaxDepth)
	resolver := selection.NewIdentityResolver(acc)
	pcfg := picker.Config[*treefile.Node]{
		Title:      cfg.Title,
		EmptyLabel: cfg.EmptyLabel,
		Label:      (*treefile.Node).DisplayLabel,
		Policy:     cfg.Policy,
		Debug:      cfg.Debug,
	}

	s := &Session{Mode: cfg.Mode, Doc: doc, index: make(map[string]*treefile.Node)}
	for n := range acc.Preorder(doc.Nodes) {
		if _, dup := s.index[n.ID]; !dup {
			s.index[n.ID] = n
		}
	}

	switch cfg.Mode {
	case config.ModeSingle:
		if len(initial) > 1 {
			return nil, fmt.Errorf("single mode takes one initial selection, got %d", len(initial))
		}
		var start string
		if len(initial) == 1 {
			start = initial[0]
		} else {
			first, ok := acc.Find(doc.Nodes, func(n *treefile.Node) bool {
				return selection.IsSelectable(acc, n, cfg.Policy)
			})
			if !ok {
				return nil, fmt.Errorf("%s has no selectable node", doc.Source)
			}
			start = first.ID
		}
		state := selection.NewState(start, nil)
		p, err := picker.NewSingle(doc.Nodes, resolver, state, pcfg)
		if err != nil {
			return nil, err
		}
		s.Picker = p
		s.values = func() []string { return []string{state.Get()} }

	case config.ModeOptional:
		if len(initial) > 1 {
			return nil, fmt.Errorf("optional mode takes at most one initial selection, got %d", len(initial))
		}
		start := selection.None[string]()
		if len(initial) == 1 {
			start = selection.Some(initial[0])
		}
		state := selection.NewState(start, nil)
		p, err := picker.NewOptional(doc.Nodes, resolver, state, pcfg)
		if err != nil {
			return nil, err
		}
		s.Picker = p
		s.values = func() []string {
			if v, ok := state.Get().Get(); ok {
				return []string{v}
			}
			return nil
		}

	case config.ModeMulti:
		state := selection.NewState(selection.NewSet(initial...), nil)
		p, err := picker.NewMulti(doc.Nodes, resolver, state, pcfg)
		if err != nil {
			return nil, err
		}
		s.Picker = p
		s.values = func() []string {
			values := state.Get().Values()
			slices.Sort(values)
			return values
		}

	default:
		return nil, fmt.Errorf("unknown picker mode %q", cfg.Mode)
	}
	return s, nil
}

// Node returns the first node with the given id.
func (s *Session) Node(id string) (*treefile.Node, bool) {
	n, ok := s.index[id]
	return n, ok
}

// ToggleID toggles the node with the given id. It reports whether the
// selection accepted the toggle and fails only for unknown ids.
func (s *Session) ToggleID(id string) (bool, error) {
	n, ok := s.Node(id)
	if !ok {
		return false, fmt.Errorf("no node with id %q in %s", id, s.Doc.Source)
	}
	return s.Picker.Toggle(n), nil
}

// Values returns the stored selection values, sorted.
func (s *Session) Values() []string {
	return s.values()
}
