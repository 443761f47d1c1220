package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ErisianArchitect/voxel-orientations/internal/history"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the history database location and entry count",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	path := getDBPath()
	if path == "" {
		defaultPath, err := history.DefaultDBPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}
	fmt.Printf("History database: %s\n", path)

	db, err := history.Open(path)
	if err != nil {
		fmt.Printf("Database not accessible: %v\n", err)
		return nil
	}
	defer db.Close()

	if err := db.MigrateUp(); err != nil {
		fmt.Printf("Migration failed: %v\n", err)
		return nil
	}

	entries, err := history.NewRepository(db).List(10000)
	if err != nil {
		fmt.Printf("Failed to read entries: %v\n", err)
		return nil
	}
	fmt.Printf("Total entries: %d\n", len(entries))
	if len(entries) > 0 {
		fmt.Printf("Most recent: %s\n", entries[0].CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
