// Package cmd implements the treepicker CLI commands.
//
// The root command holds the flags shared by every subcommand (picker mode,
// policy, depth bound). Subcommands register themselves in init.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/treepicker/cmd/treepicker/internal/config"
	"github.com/go-drift/treepicker/cmd/treepicker/internal/treefile"
	tperrors "github.com/go-drift/treepicker/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var flags struct {
	configDir string
	mode      string
	policy    string
	title     string
	debug     bool
	verbose   bool
	maxDepth  int
}

var rootCmd = &cobra.Command{
	Use:   "treepicker",
	Short: "Pick nodes from a tree document",
	Long: `treepicker loads a YAML tree document and runs single, optional or
multi selection over it with leaf-only, all-nodes or cascading policies.

Settings come from treepicker.yaml in the config directory, overridden by
flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		tperrors.SetHandler(&tperrors.LogHandler{Verbose: flags.verbose, Out: cmd.ErrOrStderr()})
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configDir, "config-dir", ".", "directory holding "+config.FileName)
	pf.StringVar(&flags.mode, "mode", "", "picker mode: single, optional or multi")
	pf.StringVar(&flags.policy, "policy", "", "selection policy: leaf-only, all-nodes or cascading")
	pf.StringVar(&flags.title, "title", "", "picker title")
	pf.BoolVar(&flags.debug, "debug", false, "report selections that match no node")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "include stack traces in reports")
	pf.IntVar(&flags.maxDepth, "max-depth", 0, "maximum tree depth to traverse")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// Main runs the CLI and exits with a non-zero status on failure.
func Main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func resolveConfig() (*config.Resolved, error) {
	return config.Resolve(flags.configDir, config.Overrides{
		Mode:     flags.mode,
		Policy:   flags.policy,
		Title:    flags.title,
		Debug:    flags.debug,
		MaxDepth: flags.maxDepth,
	})
}

func loadDocument(path string) (*config.Resolved, *treefile.Document, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, nil, err
	}
	doc, err := treefile.Load(path, cfg.MaxDepth)
	if err != nil {
		return nil, nil, err
	}
	return cfg, doc, nil
}
