package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tperrors "github.com/go-drift/treepicker/pkg/errors"
	"github.com/go-drift/treepicker/pkg/selection"
	"github.com/go-drift/treepicker/pkg/tree"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestResolveDefaults(t *testing.T) {
	got, err := Resolve(t.TempDir(), Overrides{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.Mode != ModeSingle {
		t.Errorf("Mode = %q, want %q", got.Mode, ModeSingle)
	}
	if got.Policy != selection.LeafOnly {
		t.Errorf("Policy = %v, want leaf-only", got.Policy)
	}
	if got.MaxDepth != tree.DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want %d", got.MaxDepth, tree.DefaultMaxDepth)
	}
}

func TestResolveFromFile(t *testing.T) {
	dir := writeConfig(t, `picker:
  mode: multi
  policy: cascading
  title: Regions
  empty_label: Nothing yet
  debug: true
tree:
  max_depth: 12
`)
	got, err := Resolve(dir, Overrides{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want := Resolved{
		Mode:       ModeMulti,
		Policy:     selection.Cascading,
		Title:      "Regions",
		EmptyLabel: "Nothing yet",
		Debug:      true,
		MaxDepth:   12,
	}
	if *got != want {
		t.Errorf("Resolve() = %+v, want %+v", *got, want)
	}
}

func TestOverridesWin(t *testing.T) {
	dir := writeConfig(t, "picker:\n  mode: multi\n  policy: cascading\n")
	got, err := Resolve(dir, Overrides{Mode: "optional", Policy: "all-nodes", MaxDepth: 4})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.Mode != ModeOptional || got.Policy != selection.AllNodes || got.MaxDepth != 4 {
		t.Errorf("Resolve() = %+v, want overrides applied", *got)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name      string
		overrides Overrides
		want      error
	}{
		{"cascade on single", Overrides{Policy: "cascading"}, tperrors.ErrCascadeUnsupported},
		{"bad policy", Overrides{Policy: "random"}, tperrors.ErrInvalidPolicy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(t.TempDir(), tt.overrides)
			if !tperrors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Resolve(t.TempDir(), Overrides{Mode: "several"}); err == nil {
		t.Error("expected error for unknown mode")
	}
	if _, err := Resolve(t.TempDir(), Overrides{MaxDepth: -1}); err == nil || !strings.Contains(err.Error(), "must not be negative") {
		t.Errorf("negative depth err = %v, want a must-not-be-negative error", err)
	}
}

func TestLoadOptionalMalformed(t *testing.T) {
	dir := writeConfig(t, "picker: [\n")
	_, err := LoadOptional(dir)
	var pe *tperrors.PickerError
	if !tperrors.As(err, &pe) || pe.Kind != tperrors.KindParsing {
		t.Fatalf("err = %v, want parsing PickerError", err)
	}
}
