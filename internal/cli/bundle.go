package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bundleDate string

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Build the dated daily bundle",
	Long: `Aggregate current log files and single-stream artifacts into one zip
bundle named logs_archive_<date>.zip. Bundling never deletes its inputs.`,
	RunE: runBundle,
}

func init() {
	bundleCmd.Flags().StringVar(&bundleDate, "date", "", "bundle date (YYYY-MM-DD, default: yesterday)")
	rootCmd.AddCommand(bundleCmd)
}

func runBundle(cmd *cobra.Command, args []string) error {
	_, _, mgr, err := setup()
	if err != nil {
		return err
	}

	path, err := mgr.BuildDailyBundle(bundleDate)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]string{"bundle": path})
	}
	fmt.Println(styleName.Render(path))
	return nil
}
