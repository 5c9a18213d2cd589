package selection

import (
	"fmt"
	"strings"

	tperrors "github.com/go-drift/treepicker/pkg/errors"
	"github.com/go-drift/treepicker/pkg/tree"
)

// Policy controls which nodes can be selected and how toggles spread.
type Policy int

const (
	// LeafOnly allows only leaf nodes to be selected.
	LeafOnly Policy = iota
	// AllNodes allows any node to be selected independently.
	AllNodes
	// Cascading allows any node to be selected; toggling a node applies to
	// its whole subtree. Only multi-selection supports it.
	Cascading
)

func (p Policy) String() string {
	switch p {
	case LeafOnly:
		return "leaf-only"
	case AllNodes:
		return "all-nodes"
	case Cascading:
		return "cascading"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Valid reports whether p is one of the defined policies.
func (p Policy) Valid() bool {
	return p >= LeafOnly && p <= Cascading
}

// Cascades reports whether toggles under p apply to whole subtrees.
func (p Policy) Cascades() bool {
	return p == Cascading
}

// ParsePolicy parses a policy name such as "leaf-only", "all-nodes" or
// "cascading". Underscores and case are ignored.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "leaf-only", "leaf", "leaves":
		return LeafOnly, nil
	case "all-nodes", "all":
		return AllNodes, nil
	case "cascading", "cascade":
		return Cascading, nil
	}
	return 0, &tperrors.PickerError{
		Op:    "selection.ParsePolicy",
		Kind:  tperrors.KindConfig,
		Err:   tperrors.ErrInvalidPolicy,
		Value: s,
	}
}

// IsSelectable reports whether n can be selected under p.
// Under LeafOnly only leaves qualify; every other policy accepts any node.
func IsSelectable[N any, ID comparable](acc tree.Accessor[N, ID], n N, p Policy) bool {
	if p == LeafOnly {
		return acc.IsLeaf(n)
	}
	return true
}
