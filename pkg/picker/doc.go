// Package picker provides tree picker facades for view layers.
//
// A facade binds a forest, a [selection.Resolver], a selection policy and a
// caller-owned [selection.Binding] into the handful of calls a view needs on
// each render: IsSelectable and IsSelected per row, Summary or Selected for
// the collapsed display, and Toggle when the user activates a row.
//
// There are three variants:
//
//   - [Single] always holds exactly one value. Toggling replaces it.
//   - [Optional] holds zero or one value. Toggling the selected node clears it.
//   - [Multi] holds a set. It is the only variant that accepts
//     [selection.Cascading].
//
// # Construction
//
// Each variant has one constructor taking a [Config]; unset fields take
// defaults:
//
//	acc := tree.Accessor[*Place, string]{
//	    Identity: func(p *Place) string { return p.ID },
//	    Children: func(p *Place) ([]*Place, bool) { return p.Children, p.IsRegion },
//	}
//	sel := selection.NewState(selection.NewSet[string](), func(selection.Set[string]) {
//	    s.SetState(func() {})
//	})
//	p, err := picker.NewMulti(places, selection.NewIdentityResolver(acc), sel, picker.Config[*Place]{
//	    Title:  "Cities",
//	    Policy: selection.Cascading,
//	    Label:  func(p *Place) string { return p.Name },
//	})
//
// # Presentation
//
// Every facade tracks whether its options list is [Open] or [Closed]. The
// state is for display only and never affects selection.
package picker
