// Package tree provides read-only traversal over externally owned forests.
//
// The forest is described by two extractors: one yields a node's identity,
// the other its children. A node whose children extractor reports absence
// (ok == false) is a leaf. A node that reports a present but empty slice is
// an internal node with no children, such as an empty folder.
//
// Traversal uses an explicit stack and never recurses, so deep input cannot
// exhaust the goroutine stack. Cycles are not detected; the depth bound keeps
// a malformed forest from producing an unbounded walk.
package tree

import "iter"

// DefaultMaxDepth is the depth bound used when Accessor.MaxDepth is zero.
const DefaultMaxDepth = 256

// Accessor wraps the identity and children extractors for a node type.
type Accessor[N any, ID comparable] struct {
	// Identity returns the node's identity.
	Identity func(N) ID
	// Children returns the node's children and whether the node can have any.
	// ok == false marks a leaf.
	Children func(N) (children []N, ok bool)
	// MaxDepth bounds traversal depth. Roots are depth 0; nodes at
	// depth >= MaxDepth are not visited. Zero means DefaultMaxDepth and a
	// negative value disables the bound.
	MaxDepth int
}

// Entry is a node visited by Walk.
type Entry[N any] struct {
	Node N
	// Depth is 0 for roots.
	Depth int
	// Index is the node's position among its siblings.
	Index int
	// Leaf reports whether the node is a leaf.
	Leaf bool
}

// IsLeaf reports whether n is a leaf.
func (a Accessor[N, ID]) IsLeaf(n N) bool {
	if a.Children == nil {
		return true
	}
	_, ok := a.Children(n)
	return !ok
}

// ChildrenOf returns the children of n, or nil for a leaf.
func (a Accessor[N, ID]) ChildrenOf(n N) []N {
	if a.Children == nil {
		return nil
	}
	children, ok := a.Children(n)
	if !ok {
		return nil
	}
	return children
}

// IdentityOf returns the identity of n.
func (a Accessor[N, ID]) IdentityOf(n N) ID {
	return a.Identity(n)
}

func (a Accessor[N, ID]) maxDepth() int {
	switch {
	case a.MaxDepth == 0:
		return DefaultMaxDepth
	case a.MaxDepth < 0:
		return int(^uint(0) >> 1)
	default:
		return a.MaxDepth
	}
}

type frame[N any] struct {
	nodes []N
	next  int
	depth int
}

// Walk visits every node under roots in depth-first preorder, calling fn
// for each. fn returns false to stop the walk. Walk reports whether any
// subtree was skipped because it sits at or beyond the depth bound.
func (a Accessor[N, ID]) Walk(roots []N, fn func(Entry[N]) bool) (truncated bool) {
	return a.walk(roots, 0, fn)
}

// WalkAt is like Walk but treats roots as sitting at depth start, so the
// depth bound applies as if they were visited inside a larger forest.
// Entry depths are absolute.
func (a Accessor[N, ID]) WalkAt(roots []N, start int, fn func(Entry[N]) bool) (truncated bool) {
	return a.walk(roots, start, fn)
}

func (a Accessor[N, ID]) walk(roots []N, start int, fn func(Entry[N]) bool) (truncated bool) {
	limit := a.maxDepth()
	if len(roots) == 0 {
		return false
	}
	if start >= limit {
		return true
	}
	stack := []frame[N]{{nodes: roots, depth: start}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.nodes) {
			stack = stack[:len(stack)-1]
			continue
		}
		index := top.next
		node := top.nodes[index]
		depth := top.depth
		top.next++

		var children []N
		hasChildren := false
		if a.Children != nil {
			children, hasChildren = a.Children(node)
		}
		if !fn(Entry[N]{Node: node, Depth: depth, Index: index, Leaf: !hasChildren}) {
			return truncated
		}
		if len(children) == 0 {
			continue
		}
		if depth+1 >= limit {
			truncated = true
			continue
		}
		stack = append(stack, frame[N]{nodes: children, depth: depth + 1})
	}
	return truncated
}

// Preorder returns every node under roots, parents before children.
// The sequence is lazy and may be ranged over any number of times.
func (a Accessor[N, ID]) Preorder(roots []N) iter.Seq[N] {
	return func(yield func(N) bool) {
		a.Walk(roots, func(e Entry[N]) bool {
			return yield(e.Node)
		})
	}
}

// Entries is like Preorder but yields depth and leaf information.
func (a Accessor[N, ID]) Entries(roots []N) iter.Seq[Entry[N]] {
	return func(yield func(Entry[N]) bool) {
		a.Walk(roots, yield)
	}
}

// Subtree returns n followed by all of its descendants in preorder, with n
// treated as a root.
func (a Accessor[N, ID]) Subtree(n N) iter.Seq[N] {
	return a.SubtreeAt(n, 0)
}

// SubtreeAt is like Subtree for a node found at the given depth. Descendants
// at or beyond the depth bound are omitted, matching what Walk over the
// whole forest visits.
func (a Accessor[N, ID]) SubtreeAt(n N, depth int) iter.Seq[N] {
	return func(yield func(N) bool) {
		a.walk([]N{n}, depth, func(e Entry[N]) bool {
			return yield(e.Node)
		})
	}
}

// Find returns the first node in preorder satisfying match.
func (a Accessor[N, ID]) Find(roots []N, match func(N) bool) (N, bool) {
	for n := range a.Preorder(roots) {
		if match(n) {
			return n, true
		}
	}
	var zero N
	return zero, false
}

// FindByIdentity returns the first node in preorder whose identity is id.
func (a Accessor[N, ID]) FindByIdentity(roots []N, id ID) (N, bool) {
	return a.Find(roots, func(n N) bool { return a.Identity(n) == id })
}

// Count returns the number of nodes reachable within the depth bound.
func (a Accessor[N, ID]) Count(roots []N) int {
	count := 0
	a.Walk(roots, func(Entry[N]) bool {
		count++
		return true
	})
	return count
}

// DepthOf returns the depth of the first node in preorder satisfying match.
func (a Accessor[N, ID]) DepthOf(roots []N, match func(N) bool) (int, bool) {
	depth, found := 0, false
	a.Walk(roots, func(e Entry[N]) bool {
		if match(e.Node) {
			depth, found = e.Depth, true
			return false
		}
		return true
	})
	return depth, found
}

// Path returns the chain of nodes from a root down to the first node in
// preorder satisfying match, inclusive. It returns nil when nothing matches.
func (a Accessor[N, ID]) Path(roots []N, match func(N) bool) []N {
	var path []N
	found := false
	a.Walk(roots, func(e Entry[N]) bool {
		path = append(path[:e.Depth], e.Node)
		if match(e.Node) {
			found = true
			return false
		}
		return true
	})
	if !found {
		return nil
	}
	return path
}
