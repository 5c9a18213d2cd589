package picker

import (
	"fmt"

	tperrors "github.com/go-drift/treepicker/pkg/errors"
	"github.com/go-drift/treepicker/pkg/selection"
)

const (
	// DefaultTitle is used when Config.Title is empty.
	DefaultTitle = "Select"
	// DefaultEmptyLabel is used when Config.EmptyLabel is empty.
	DefaultEmptyLabel = "None"
)

// Config holds the optional settings shared by every picker variant.
type Config[N any] struct {
	// Title is the picker's heading. Empty uses DefaultTitle.
	Title string
	// EmptyLabel is shown when nothing is selected or the selection matches
	// no node. Empty uses DefaultEmptyLabel.
	EmptyLabel string
	// Label renders a node as row text. Nil formats the node's identity.
	Label func(N) string
	// Policy decides which nodes are selectable. The zero value is LeafOnly.
	Policy selection.Policy
	// Debug reports selections that match no node to the errors handler.
	Debug bool
}

func (c Config[N]) withDefaults(identity func(N) string) Config[N] {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.EmptyLabel == "" {
		c.EmptyLabel = DefaultEmptyLabel
	}
	if c.Label == nil {
		c.Label = identity
	}
	return c
}

func validate[T any](op string, p selection.Policy, b selection.Binding[T], allowCascade bool) error {
	if b == nil {
		return tperrors.New(op, tperrors.KindConfig, tperrors.ErrNilBinding)
	}
	if !p.Valid() {
		return &tperrors.PickerError{Op: op, Kind: tperrors.KindConfig, Err: tperrors.ErrInvalidPolicy, Value: int(p)}
	}
	if p.Cascades() && !allowCascade {
		return tperrors.New(op, tperrors.KindConfig, tperrors.ErrCascadeUnsupported)
	}
	return nil
}

func identityLabel[N any, ID comparable](identity func(N) ID) func(N) string {
	return func(n N) string {
		return fmt.Sprint(identity(n))
	}
}
