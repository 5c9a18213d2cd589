package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/go-drift/treepicker/cmd/treepicker/internal/session"
	"github.com/go-drift/treepicker/cmd/treepicker/internal/view"
)

var browseSelected []string

var browseCmd = &cobra.Command{
	Use:   "browse FILE",
	Short: "Pick nodes interactively",
	Long: `Open FILE in an interactive terminal picker.

Press enter to open the options list, space to toggle the highlighted row,
esc to close the list and q to quit. The final selection is printed on exit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		s, err := session.New(doc, cfg, browseSelected)
		if err != nil {
			return err
		}

		p := tea.NewProgram(view.NewModel(s, view.DefaultStyles()), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("browse: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(s.Values(), ","))
		return nil
	},
}

func init() {
	browseCmd.Flags().StringSliceVar(&browseSelected, "select", nil, "initial selection ids (comma separated)")
	rootCmd.AddCommand(browseCmd)
}
