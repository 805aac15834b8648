package cli

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List archive files, newest first",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_, _, mgr, err := setup()
	if err != nil {
		return err
	}

	entries := mgr.ListArchives()

	if jsonOut {
		return printJSON(entries)
	}
	renderArchives(entries)
	return nil
}
