package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ErisianArchitect/voxel-orientations/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently recorded CLI invocations",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	var db *history.DB
	var err error
	if path := getDBPath(); path != "" {
		db, err = history.Open(path)
	} else {
		db, err = history.OpenDefault()
	}
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	if err := db.MigrateUp(); err != nil {
		return fmt.Errorf("failed to migrate history database: %w", err)
	}

	entries, err := history.NewRepository(db).List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No recorded history")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-6s 0x%02X  %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Command, e.PackedByte, e.Description)
	}
	return nil
}
