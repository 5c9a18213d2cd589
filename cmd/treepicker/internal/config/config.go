package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	tperrors "github.com/go-drift/treepicker/pkg/errors"
	"github.com/go-drift/treepicker/pkg/selection"
	"github.com/go-drift/treepicker/pkg/tree"
)

// FileName is the optional configuration file looked up in the working
// directory.
const FileName = "treepicker.yaml"

// Config represents the optional treepicker.yaml configuration.
type Config struct {
	Picker PickerConfig `yaml:"picker"`
	Tree   TreeConfig   `yaml:"tree"`
}

// PickerConfig contains picker settings.
type PickerConfig struct {
	Mode       string `yaml:"mode,omitempty"`
	Policy     string `yaml:"policy,omitempty"`
	Title      string `yaml:"title,omitempty"`
	EmptyLabel string `yaml:"empty_label,omitempty"`
	Debug      bool   `yaml:"debug,omitempty"`
}

// TreeConfig contains traversal settings.
type TreeConfig struct {
	MaxDepth int `yaml:"max_depth,omitempty"`
}

// Mode selects the picker variant.
type Mode string

const (
	ModeSingle   Mode = "single"
	ModeOptional Mode = "optional"
	ModeMulti    Mode = "multi"
)

// Resolved contains resolved configuration values.
type Resolved struct {
	Mode       Mode
	Policy     selection.Policy
	Title      string
	EmptyLabel string
	Debug      bool
	MaxDepth   int
}

// Overrides holds command-line values. Empty fields keep the file value.
type Overrides struct {
	Mode     string
	Policy   string
	Title    string
	Debug    bool
	MaxDepth int
}

// LoadOptional reads treepicker.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &tperrors.PickerError{
			Op:   "config.LoadOptional",
			Kind: tperrors.KindParsing,
			Err:  &tperrors.ParseError{Source: path, Msg: err.Error()},
		}
	}

	return &cfg, nil
}

// Resolve loads treepicker.yaml (if present), applies overrides and
// defaults, and validates the result.
func Resolve(dir string, o Overrides) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	mode := firstNonEmpty(o.Mode, cfg.Picker.Mode, string(ModeSingle))
	policyName := firstNonEmpty(o.Policy, cfg.Picker.Policy, selection.LeafOnly.String())

	resolved := &Resolved{
		Mode:       Mode(strings.ToLower(mode)),
		Title:      firstNonEmpty(o.Title, cfg.Picker.Title),
		EmptyLabel: strings.TrimSpace(cfg.Picker.EmptyLabel),
		Debug:      o.Debug || cfg.Picker.Debug,
		MaxDepth:   cfg.Tree.MaxDepth,
	}
	if o.MaxDepth != 0 {
		resolved.MaxDepth = o.MaxDepth
	}
	if resolved.MaxDepth == 0 {
		resolved.MaxDepth = tree.DefaultMaxDepth
	}

	switch resolved.Mode {
	case ModeSingle, ModeOptional, ModeMulti:
	default:
		return nil, &tperrors.PickerError{
			Op:    "config.Resolve",
			Kind:  tperrors.KindConfig,
			Err:   fmt.Errorf("unknown picker mode (want single, optional or multi)"),
			Value: mode,
		}
	}

	resolved.Policy, err = selection.ParsePolicy(policyName)
	if err != nil {
		return nil, err
	}
	if resolved.Policy.Cascades() && resolved.Mode != ModeMulti {
		return nil, &tperrors.PickerError{
			Op:    "config.Resolve",
			Kind:  tperrors.KindConfig,
			Err:   tperrors.ErrCascadeUnsupported,
			Value: string(resolved.Mode),
		}
	}
	if resolved.MaxDepth < 0 {
		return nil, &tperrors.PickerError{
			Op:    "config.Resolve",
			Kind:  tperrors.KindConfig,
			Err:   fmt.Errorf("tree.max_depth must not be negative"),
			Value: resolved.MaxDepth,
		}
	}

	return resolved, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
