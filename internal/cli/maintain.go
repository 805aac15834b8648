package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logtools/log-archiver/internal/maintain"
)

var (
	maintainOlderThan int
	maintainKeepDays  int
)

var maintainCmd = &cobra.Command{
	Use:   "maintain",
	Short: "Run one full maintenance cycle",
	Long: `Run compression, daily bundling, retention pruning, and statistics in
sequence. A failed stage is logged and the remaining stages still run.`,
	RunE: runMaintain,
}

func init() {
	maintainCmd.Flags().IntVar(&maintainOlderThan, "older-than-days", 0, "override the compression age threshold")
	maintainCmd.Flags().IntVar(&maintainKeepDays, "keep-days", 0, "override the archive retention window")
	rootCmd.AddCommand(maintainCmd)
}

func runMaintain(cmd *cobra.Command, args []string) error {
	cfg, log, mgr, err := setup()
	if err != nil {
		return err
	}

	mc := cfg.Maintenance
	if maintainOlderThan > 0 {
		mc.OlderThanDays = maintainOlderThan
	}
	if maintainKeepDays > 0 {
		mc.KeepDays = maintainKeepDays
	}

	runner := maintain.New(mgr, mc, log)
	rep := runner.RunOnce(cmd.Context())

	if jsonOut {
		return printJSON(struct {
			Compressed map[string]int64 `json:"compressed"`
			Bundle     string           `json:"bundle"`
			Pruned     int              `json:"pruned"`
		}{rep.Compressed, rep.BundlePath, rep.Pruned})
	}

	fmt.Println(styleTitle.Render("Maintenance cycle"))
	fmt.Printf("  compressed: %d file(s)\n", len(rep.Compressed))
	if rep.BundlePath != "" {
		fmt.Printf("  bundle: %s\n", styleName.Render(rep.BundlePath))
	} else {
		fmt.Printf("  bundle: %s\n", styleWarn.Render("failed"))
	}
	fmt.Printf("  pruned: %d file(s)\n", rep.Pruned)
	fmt.Printf("  logs: %d (%.2f MB), archives: %d (%.2f MB)\n",
		rep.Stats.LogCount, rep.Stats.LogSizeMB,
		rep.Stats.ArchiveCount, rep.Stats.ArchiveSizeMB)
	return nil
}
