// Package treefile loads tree documents used by the treepicker CLI.
//
// A document is YAML:
//
//	version: v1.0.0
//	nodes:
//	  - id: uk
//	    label: United Kingdom
//	    children:
//	      - {id: london, label: London}
//	  - {id: archive, children: []}
//
// A node with a children key, even an empty list, is internal. A node
// without one is a leaf.
package treefile

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	tperrors "github.com/go-drift/treepicker/pkg/errors"
	"github.com/go-drift/treepicker/pkg/tree"
)

// SupportedMajor is the document schema major version this package reads.
const SupportedMajor = "v1"

// Node is one entry of a tree document.
type Node struct {
	ID       string
	Label    string
	Children []*Node
	// Folder is true when the document declared a children key.
	Folder bool
	// Line is the source line of the node's mapping.
	Line int
}

// UnmarshalYAML keeps the difference between a missing children key and an
// empty one.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		ID       string   `yaml:"id"`
		Label    string   `yaml:"label"`
		Children *[]*Node `yaml:"children"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	n.ID = raw.ID
	n.Label = raw.Label
	n.Line = value.Line
	if raw.Children != nil {
		n.Children = *raw.Children
		n.Folder = true
	}
	return nil
}

// DisplayLabel returns the label, falling back to the id.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Document is a parsed tree document.
type Document struct {
	Version string  `yaml:"version"`
	Nodes   []*Node `yaml:"nodes"`
	// Source is the file the document was read from.
	Source string `yaml:"-"`
}

// Accessor returns the tree accessor for document nodes.
func Accessor(maxDepth int) tree.Accessor[*Node, string] {
	return tree.Accessor[*Node, string]{
		Identity: func(n *Node) string {
			if n == nil {
				return ""
			}
			return n.ID
		},
		Children: func(n *Node) ([]*Node, bool) {
			if n == nil {
				return nil, false
			}
			return n.Children, n.Folder
		},
		MaxDepth: maxDepth,
	}
}

// Load reads and parses the document at path.
func Load(path string, maxDepth int) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return Parse(path, data, maxDepth)
}

// Parse decodes data as a tree document and validates it. Node ids must be
// non-empty and unique, since selections refer to nodes by id.
func Parse(source string, data []byte, maxDepth int) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, parseError(source, 0, err.Error())
	}
	doc.Source = source

	if doc.Version == "" {
		return nil, parseError(source, 0, "missing version")
	}
	if !semver.IsValid(doc.Version) {
		return nil, parseError(source, 0, fmt.Sprintf("invalid version %q", doc.Version))
	}
	if major := semver.Major(doc.Version); major != SupportedMajor {
		return nil, parseError(source, 0, fmt.Sprintf("unsupported version %s (want %s.x.x)", doc.Version, SupportedMajor))
	}

	seen := make(map[string]int)
	var invalid error
	truncated := Accessor(maxDepth).Walk(doc.Nodes, func(e tree.Entry[*Node]) bool {
		n := e.Node
		switch {
		case n == nil:
			invalid = parseError(source, 0, "empty node")
		case n.ID == "":
			invalid = parseError(source, n.Line, "node has no id")
		case seen[n.ID] != 0:
			invalid = parseError(source, n.Line, fmt.Sprintf("duplicate id %q (first defined on line %d)", n.ID, seen[n.ID]))
		default:
			seen[n.ID] = max(n.Line, 1)
			return true
		}
		return false
	})
	if invalid != nil {
		return nil, invalid
	}
	if truncated {
		return nil, &tperrors.PickerError{Op: "treefile.Parse", Kind: tperrors.KindDepth, Err: tperrors.ErrDepthExceeded, Value: source}
	}
	return &doc, nil
}

// Stats summarizes a document.
type Stats struct {
	Nodes   int
	Leaves  int
	Folders int
	Depth   int
}

// Stats counts the document's nodes.
func (d *Document) Stats(maxDepth int) Stats {
	var s Stats
	Accessor(maxDepth).Walk(d.Nodes, func(e tree.Entry[*Node]) bool {
		s.Nodes++
		if e.Leaf {
			s.Leaves++
		} else {
			s.Folders++
		}
		s.Depth = max(s.Depth, e.Depth+1)
		return true
	})
	return s
}

func parseError(source string, line int, msg string) error {
	return &tperrors.PickerError{
		Op:   "treefile.Parse",
		Kind: tperrors.KindParsing,
		Err:  &tperrors.ParseError{Source: source, Line: line, Msg: msg},
	}
}
