package cli

import (
	"github.com/spf13/cobra"

	"github.com/logtools/log-archiver/internal/codec"
)

var (
	compressOlderThan int
	compressCodec     string
)

var compressCmd = &cobra.Command{
	Use:   "compress",
	Short: "Compress old log files into the archive directory",
	Long: `Compress every log file older than the threshold into one artifact per
file, then delete the original. Files that fail are logged, skipped, and
picked up on the next run.`,
	RunE: runCompress,
}

func init() {
	compressCmd.Flags().IntVar(&compressOlderThan, "older-than-days", 7, "compress files older than this many days")
	compressCmd.Flags().StringVar(&compressCodec, "codec", "zip", "compression codec: zip, gz, zst")
	rootCmd.AddCommand(compressCmd)
}

func runCompress(cmd *cobra.Command, args []string) error {
	_, _, mgr, err := setup()
	if err != nil {
		return err
	}

	kind, err := codec.ParseKind(compressCodec)
	if err != nil {
		return err
	}

	result := mgr.CompressEligible(compressOlderThan, kind)

	if jsonOut {
		return printJSON(result)
	}
	renderCompressed(result)
	return nil
}
