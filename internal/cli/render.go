package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/logtools/log-archiver/internal/archive"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true)
	styleName  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))  // cyan
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // yellow
)

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderStats(s archive.Statistics) {
	fmt.Println(styleTitle.Render("Log and archive statistics"))
	fmt.Println()
	fmt.Println(styleName.Render("Log files:"))
	fmt.Printf("  count: %d\n", s.LogCount)
	fmt.Printf("  total: %.2f MB\n", s.LogSizeMB)
	if s.OldestLog != nil {
		fmt.Printf("  oldest: %s\n", styleDim.Render(s.OldestLog.Format("2006-01-02 15:04:05")))
	}
	if s.NewestLog != nil {
		fmt.Printf("  newest: %s\n", styleDim.Render(s.NewestLog.Format("2006-01-02 15:04:05")))
	}
	fmt.Println()
	fmt.Println(styleName.Render("Archives:"))
	fmt.Printf("  count: %d\n", s.ArchiveCount)
	fmt.Printf("  total: %.2f MB\n", s.ArchiveSizeMB)
}

func renderArchives(entries []archive.Entry) {
	if len(entries) == 0 {
		fmt.Println(styleDim.Render("no archive files"))
		return
	}

	fmt.Println(styleTitle.Render(fmt.Sprintf("Archives (%d)", len(entries))))
	fmt.Println()
	for _, e := range entries {
		fmt.Println(styleName.Render(e.Name))
		fmt.Printf("  size: %.2f MB\n", e.SizeMB)
		fmt.Printf("  created: %s\n", e.Created.Format("2006-01-02 15:04:05"))
		fmt.Printf("  path: %s\n", styleDim.Render(e.Path))
		fmt.Println()
	}
}

func renderCompressed(result map[string]int64) {
	if len(result) == 0 {
		fmt.Println(styleDim.Render("no eligible log files"))
		return
	}

	fmt.Println(styleTitle.Render(fmt.Sprintf("Compressed %d file(s)", len(result))))
	for name, size := range result {
		fmt.Printf("  - %s: %.2f MB\n", styleName.Render(name), float64(size)/(1024*1024))
	}
}
