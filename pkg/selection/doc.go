// Package selection implements the selection-state model behind tree pickers.
//
// It answers four questions for a forest described by a [tree.Accessor]:
// which nodes are selectable ([IsSelectable]), which are selected
// ([Resolver.IsSelected], [Resolver.IsMember]), how a toggle changes the
// selection ([Mutator]), and which node a stored selection denotes
// ([Resolver.Resolve], [Resolver.ResolveAll]).
//
// # Selection Modes
//
// A selection stores either node identities or whole nodes. The choice is
// made once, at construction, by picking a resolver constructor:
//
//	byID := selection.NewIdentityResolver(acc)  // stores identities
//	byValue := selection.NewValueResolver(acc)  // stores nodes; N must be comparable
//
// The generic parameters make a mismatch between the stored type and the
// mode unrepresentable, so there are no runtime type checks.
//
// # Containers
//
// Selections live in caller-owned containers: a plain value for single
// selection, [Optional] for zero-or-one, and [Set] for many. The model never
// edits a container in place. Each toggle computes a replacement, which the
// caller writes back through a [Binding].
//
// # Threading
//
// Nothing here locks. Callers serialize edits to the forest and to the
// selection, typically on the UI thread.
package selection
