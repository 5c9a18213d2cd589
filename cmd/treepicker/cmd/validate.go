package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a tree document and print its shape",
	Long: `Parse FILE and check its version, node ids and depth.

Ids must be present and unique. The version must be a valid v1 semantic
version such as v1.0.0.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		st := doc.Stats(cfg.MaxDepth)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: version %s, %d nodes (%d leaves, %d folders), depth %d\n",
			args[0], doc.Version, st.Nodes, st.Leaves, st.Folders, st.Depth)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
