package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cleanupKeepDays int

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete archives older than the retention window",
	RunE:  runCleanup,
}

func init() {
	cleanupCmd.Flags().IntVar(&cleanupKeepDays, "keep-days", 30, "keep archives younger than this many days")
	rootCmd.AddCommand(cleanupCmd)
}

func runCleanup(cmd *cobra.Command, args []string) error {
	_, _, mgr, err := setup()
	if err != nil {
		return err
	}

	deleted := mgr.PruneExpired(cleanupKeepDays)

	if jsonOut {
		return printJSON(map[string]int{"deleted": deleted})
	}
	fmt.Printf("deleted %d archive file(s)\n", deleted)
	return nil
}
