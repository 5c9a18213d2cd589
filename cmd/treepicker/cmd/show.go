package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/treepicker/cmd/treepicker/internal/session"
	"github.com/go-drift/treepicker/cmd/treepicker/internal/view"
)

var showFlags struct {
	selected []string
	toggles  []string
	plain    bool
}

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Print the picker rows after applying toggles",
	Long: `Load FILE, seed the selection with --select, apply each --toggle in
order, and print the resulting rows and summary.

Rows are marked [x] selected, [ ] selectable, [*] selected but not
selectable, and left blank when neither.`,
	Example: `  treepicker show places.yaml --mode multi --policy cascading --toggle uk
  treepicker show places.yaml --mode optional --select london --toggle london`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringSliceVar(&showFlags.selected, "select", nil, "initial selection ids (comma separated)")
	showCmd.Flags().StringArrayVar(&showFlags.toggles, "toggle", nil, "id to toggle, repeatable")
	showCmd.Flags().BoolVar(&showFlags.plain, "plain", false, "disable colors")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	s, err := session.New(doc, cfg, showFlags.selected)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, id := range showFlags.toggles {
		accepted, err := s.ToggleID(id)
		if err != nil {
			return err
		}
		if !accepted {
			fmt.Fprintf(out, "skipped %s: not selectable under %s\n", id, cfg.Policy)
		}
	}

	styles := view.DefaultStyles()
	if showFlags.plain {
		styles = view.PlainStyles()
	}
	fmt.Fprint(out, view.RenderRows(s.Picker.Rows(), -1, styles))
	fmt.Fprintln(out)
	fmt.Fprintln(out, view.RenderSummary(s.Picker.Title(), s.Picker.Summary(), styles))
	fmt.Fprintf(out, "selection (%s): %s\n", cfg.Mode, strings.Join(s.Values(), ","))
	return nil
}
