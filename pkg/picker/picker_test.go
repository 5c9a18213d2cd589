package picker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tperrors "github.com/go-drift/treepicker/pkg/errors"
	"github.com/go-drift/treepicker/pkg/picker"
	"github.com/go-drift/treepicker/pkg/selection"
	"github.com/go-drift/treepicker/pkg/tree"
)

type place struct {
	ID       string
	Name     string
	Children []*place
	IsRegion bool
}

var acc = tree.Accessor[*place, string]{
	Identity: func(p *place) string { return p.ID },
	Children: func(p *place) ([]*place, bool) { return p.Children, p.IsRegion },
}

var byID = selection.NewIdentityResolver(acc)

type countries struct {
	roots                  []*place
	uk, london, birmingham *place
}

func newCountries() countries {
	c := countries{
		london:     &place{ID: "london", Name: "London"},
		birmingham: &place{ID: "birmingham", Name: "Birmingham"},
	}
	c.uk = &place{ID: "uk", Name: "United Kingdom", IsRegion: true, Children: []*place{c.london, c.birmingham}}
	c.roots = []*place{c.uk}
	return c
}

func label(p *place) string { return p.Name }

type captureHandler struct {
	errs []*tperrors.PickerError
}

func (h *captureHandler) HandleError(err *tperrors.PickerError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(*tperrors.PanicError)      {}

func captureReports(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	old := tperrors.DefaultHandler
	tperrors.SetHandler(h)
	t.Cleanup(func() { tperrors.SetHandler(old) })
	return h
}

func TestConstructorValidation(t *testing.T) {
	c := newCountries()

	_, err := picker.NewSingle(c.roots, byID, selection.NewState("london", nil), picker.Config[*place]{Policy: selection.Cascading})
	require.Error(t, err)
	assert.ErrorIs(t, err, tperrors.ErrCascadeUnsupported)

	_, err = picker.NewOptional(c.roots, byID, selection.NewState(selection.None[string](), nil), picker.Config[*place]{Policy: selection.Cascading})
	assert.ErrorIs(t, err, tperrors.ErrCascadeUnsupported)

	_, err = picker.NewMulti[*place, string, string](c.roots, byID, nil, picker.Config[*place]{})
	assert.ErrorIs(t, err, tperrors.ErrNilBinding)

	_, err = picker.NewMulti(c.roots, byID, selection.NewState(selection.NewSet[string](), nil), picker.Config[*place]{Policy: selection.Policy(42)})
	assert.ErrorIs(t, err, tperrors.ErrInvalidPolicy)

	var pe *tperrors.PickerError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "picker.NewMulti", pe.Op)
	assert.Equal(t, tperrors.KindConfig, pe.Kind)

	m, err := picker.NewMulti(c.roots, byID, selection.NewState(selection.NewSet[string](), nil), picker.Config[*place]{Policy: selection.Cascading})
	require.NoError(t, err)
	assert.Equal(t, selection.Cascading, m.Policy())
}

func TestConfigDefaults(t *testing.T) {
	c := newCountries()
	p, err := picker.NewOptional(c.roots, byID, selection.NewState(selection.None[string](), nil), picker.Config[*place]{})
	require.NoError(t, err)

	assert.Equal(t, picker.DefaultTitle, p.Title())
	assert.Equal(t, selection.LeafOnly, p.Policy())
	assert.Equal(t, picker.DefaultEmptyLabel, p.Summary())
	assert.Equal(t, "london", p.Label(c.london), "default label formats the identity")
}

// Scenario: a single picker always replaces, it never clears.
func TestSingleReplaces(t *testing.T) {
	c := newCountries()
	state := selection.NewState("london", nil)
	p, err := picker.NewSingle(c.roots, byID, state, picker.Config[*place]{Policy: selection.AllNodes, Label: label})
	require.NoError(t, err)

	assert.True(t, p.IsSelected(c.london))
	assert.Equal(t, "London", p.Summary())

	require.True(t, p.Toggle(c.birmingham))
	assert.Equal(t, "birmingham", state.Get())
	assert.True(t, p.IsSelected(c.birmingham))
	assert.False(t, p.IsSelected(c.london))

	require.True(t, p.Toggle(c.birmingham))
	assert.Equal(t, "birmingham", state.Get(), "toggling the selected node keeps it")
}

func TestSingleWritesOnlyOnChange(t *testing.T) {
	c := newCountries()
	writes := 0
	state := selection.NewState("london", func(string) { writes++ })
	p, err := picker.NewSingle(c.roots, byID, state, picker.Config[*place]{})
	require.NoError(t, err)

	p.Toggle(c.london)
	assert.Equal(t, 0, writes)
	p.Toggle(c.birmingham)
	assert.Equal(t, 1, writes)
	assert.False(t, p.Toggle(c.uk), "internal node is not selectable under leaf-only")
	assert.Equal(t, 1, writes)
}

func TestSingleBreadcrumb(t *testing.T) {
	c := newCountries()
	p, err := picker.NewSingle(c.roots, byID, selection.NewState("birmingham", nil), picker.Config[*place]{})
	require.NoError(t, err)

	crumbs := p.Breadcrumb()
	require.Len(t, crumbs, 2)
	assert.Same(t, c.uk, crumbs[0])
	assert.Same(t, c.birmingham, crumbs[1])
}

// Scenario: an externally set selection on an internal node still displays
// under leaf-only, but the node cannot be toggled.
func TestOptionalResolvesNonLeafSelection(t *testing.T) {
	c := newCountries()
	state := selection.NewState(selection.Some("uk"), nil)
	p, err := picker.NewOptional(c.roots, byID, state, picker.Config[*place]{Label: label})
	require.NoError(t, err)

	n, ok := p.Selected()
	require.True(t, ok)
	assert.Same(t, c.uk, n)
	assert.Equal(t, "United Kingdom", p.Summary())
	assert.False(t, p.IsSelectable(c.uk))
	assert.True(t, p.IsSelected(c.uk))

	assert.False(t, p.Toggle(c.uk))
	assert.Equal(t, selection.Some("uk"), state.Get())
}

func TestOptionalToggleAndClear(t *testing.T) {
	c := newCountries()
	state := selection.NewState(selection.None[string](), nil)
	p, err := picker.NewOptional(c.roots, byID, state, picker.Config[*place]{})
	require.NoError(t, err)

	require.True(t, p.Toggle(c.london))
	assert.Equal(t, selection.Some("london"), p.Value())

	require.True(t, p.Toggle(c.london))
	assert.False(t, p.Value().Valid)
	assert.Nil(t, p.Breadcrumb())

	p.Toggle(c.birmingham)
	p.Clear()
	assert.False(t, state.Get().Valid)
	_, ok := p.Selected()
	assert.False(t, ok)
}

// Scenario: leaf-only multi selection.
func TestMultiLeafOnly(t *testing.T) {
	c := newCountries()
	state := selection.NewState(selection.NewSet[string](), nil)
	p, err := picker.NewMulti(c.roots, byID, state, picker.Config[*place]{Policy: selection.LeafOnly})
	require.NoError(t, err)

	require.True(t, p.Toggle(c.london))
	assert.True(t, state.Get().Equal(selection.NewSet("london")))

	assert.False(t, p.Toggle(c.uk))
	assert.True(t, state.Get().Equal(selection.NewSet("london")))
}

// Scenario: cascading multi selection.
func TestMultiCascading(t *testing.T) {
	c := newCountries()
	state := selection.NewState(selection.NewSet[string](), nil)
	p, err := picker.NewMulti(c.roots, byID, state, picker.Config[*place]{Policy: selection.Cascading, Label: label})
	require.NoError(t, err)

	require.True(t, p.Toggle(c.uk))
	assert.True(t, state.Get().Equal(selection.NewSet("uk", "london", "birmingham")))
	assert.Equal(t, "United Kingdom, London, Birmingham", p.Summary())

	require.True(t, p.Toggle(c.uk))
	assert.Equal(t, 0, state.Get().Len())
	assert.Equal(t, picker.DefaultEmptyLabel, p.Summary())
}

func TestMultiSelectAllAndClear(t *testing.T) {
	c := newCountries()
	state := selection.NewState(selection.NewSet[string](), nil)
	p, err := picker.NewMulti(c.roots, byID, state, picker.Config[*place]{})
	require.NoError(t, err)

	p.SelectAll()
	assert.True(t, state.Get().Equal(selection.NewSet("london", "birmingham")), "leaf-only select-all skips regions")

	p.Clear()
	assert.Equal(t, 0, p.Value().Len())
}

func TestRows(t *testing.T) {
	c := newCountries()
	state := selection.NewState(selection.NewSet("birmingham"), nil)
	p, err := picker.NewMulti(c.roots, byID, state, picker.Config[*place]{Label: label})
	require.NoError(t, err)

	rows := p.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, picker.Row[*place]{Node: c.uk, Depth: 0, Label: "United Kingdom", Leaf: false, Selectable: false, Selected: false}, rows[0])
	assert.Equal(t, picker.Row[*place]{Node: c.london, Depth: 1, Label: "London", Leaf: true, Selectable: true, Selected: false}, rows[1])
	assert.Equal(t, picker.Row[*place]{Node: c.birmingham, Depth: 1, Label: "Birmingham", Leaf: true, Selectable: true, Selected: true}, rows[2])
}

func TestPresentation(t *testing.T) {
	c := newCountries()
	single, err := picker.NewSingle(c.roots, byID, selection.NewState("london", nil), picker.Config[*place]{})
	require.NoError(t, err)

	assert.Equal(t, picker.Closed, single.Presentation())
	single.Open()
	assert.True(t, single.IsOpen())
	single.Toggle(c.uk)
	assert.True(t, single.IsOpen(), "rejected toggle keeps the list open")
	single.Toggle(c.birmingham)
	assert.False(t, single.IsOpen(), "single picker dismisses after a selection")

	multi, err := picker.NewMulti(c.roots, byID, selection.NewState(selection.NewSet[string](), nil), picker.Config[*place]{})
	require.NoError(t, err)
	multi.Open()
	multi.Toggle(c.london)
	assert.True(t, multi.IsOpen(), "multi picker stays open")
	multi.Dismiss()
	assert.Equal(t, "closed", multi.Presentation().String())
}

func TestUnresolvedSelectionDegrades(t *testing.T) {
	reports := captureReports(t)
	c := newCountries()

	p, err := picker.NewOptional(c.roots, byID, selection.NewState(selection.Some("atlantis"), nil), picker.Config[*place]{})
	require.NoError(t, err)
	assert.Equal(t, picker.DefaultEmptyLabel, p.Summary())
	for _, r := range p.Rows() {
		assert.False(t, r.Selected)
	}
	assert.Empty(t, reports.errs, "reports are off unless Debug is set")

	m, err := picker.NewMulti(c.roots, byID, selection.NewState(selection.NewSet("atlantis", "london"), nil), picker.Config[*place]{Debug: true})
	require.NoError(t, err)
	assert.Equal(t, "london", m.Summary())
	require.Len(t, reports.errs, 1)
	assert.Equal(t, tperrors.KindUnresolved, reports.errs[0].Kind)
	assert.Equal(t, "atlantis", reports.errs[0].Value)
	assert.ErrorIs(t, reports.errs[0], tperrors.ErrUnresolved)
}

func TestDepthTruncationReported(t *testing.T) {
	reports := captureReports(t)
	c := newCountries()
	shallow := acc
	shallow.MaxDepth = 1

	p, err := picker.NewMulti(c.roots, selection.NewIdentityResolver(shallow), selection.NewState(selection.NewSet[string](), nil), picker.Config[*place]{Debug: true})
	require.NoError(t, err)
	assert.Len(t, p.Rows(), 1)
	require.Len(t, reports.errs, 1)
	assert.Equal(t, tperrors.KindDepth, reports.errs[0].Kind)
}

func TestValueModePicker(t *testing.T) {
	c := newCountries()
	state := selection.NewState(c.london, nil)
	p, err := picker.NewSingle(c.roots, selection.NewValueResolver(acc), state, picker.Config[*place]{Label: label})
	require.NoError(t, err)

	assert.Equal(t, "London", p.Summary())
	p.Toggle(c.birmingham)
	assert.Same(t, c.birmingham, state.Get())
}

func TestSetRoots(t *testing.T) {
	c := newCountries()
	p, err := picker.NewSingle(c.roots, byID, selection.NewState("london", nil), picker.Config[*place]{})
	require.NoError(t, err)

	p.SetRoots(nil)
	assert.Empty(t, p.Roots())
	_, ok := p.Selected()
	assert.False(t, ok)
	assert.Equal(t, picker.DefaultEmptyLabel, p.Summary())
}

func TestValueModeSelectionOutsideForest(t *testing.T) {
	reports := captureReports(t)
	c := newCountries()
	paris := &place{ID: "paris", Name: "Paris"}
	byValue := selection.NewValueResolver(acc)

	opt, err := picker.NewOptional(c.roots, byValue, selection.NewState(selection.Some(paris), nil), picker.Config[*place]{Label: label, Debug: true})
	require.NoError(t, err)
	_, ok := opt.Selected()
	assert.False(t, ok, "a node outside the forest is not selected")
	assert.Equal(t, picker.DefaultEmptyLabel, opt.Summary())

	multi, err := picker.NewMulti(c.roots, byValue, selection.NewState(selection.NewSet(paris), nil), picker.Config[*place]{Label: label})
	require.NoError(t, err)
	assert.Empty(t, multi.SelectedNodes())
	assert.Equal(t, opt.Summary(), multi.Summary(), "optional and multi agree on a stale value")

	require.NotEmpty(t, reports.errs)
	assert.Equal(t, tperrors.KindUnresolved, reports.errs[0].Kind)
	assert.Same(t, paris, reports.errs[0].Value)
}

func TestMultiCascadeMatchesVisibleRows(t *testing.T) {
	c := &place{ID: "c"}
	b := &place{ID: "b", IsRegion: true, Children: []*place{c}}
	a := &place{ID: "a", IsRegion: true, Children: []*place{b}}
	root := &place{ID: "root", IsRegion: true, Children: []*place{a}}

	bounded := acc
	bounded.MaxDepth = 2
	state := selection.NewState(selection.NewSet[string](), nil)
	p, err := picker.NewMulti([]*place{root}, selection.NewIdentityResolver(bounded), state, picker.Config[*place]{Policy: selection.Cascading})
	require.NoError(t, err)

	rows := p.Rows()
	require.Len(t, rows, 2)

	require.True(t, p.Toggle(a))
	assert.True(t, state.Get().Equal(selection.NewSet("a")), "cascade covers only displayed rows, got %v", state.Get().Values())

	require.True(t, p.Toggle(root))
	assert.True(t, state.Get().Equal(selection.NewSet("root", "a")))
}
