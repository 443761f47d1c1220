package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	voxorient "github.com/ErisianArchitect/voxel-orientations"
)

var cycleCount int

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "List the rotations reached by cycling through the canonical 24-rotation enumeration",
	RunE:  runCycle,
}

func init() {
	rootCmd.AddCommand(cycleCmd)
	cycleCmd.Flags().IntVar(&cycleCount, "count", 24, "Number of steps to print, starting from the identity rotation")
}

func runCycle(cmd *cobra.Command, args []string) error {
	for k := 0; k < cycleCount; k++ {
		r := voxorient.IdentityRotation.Cycle(k)
		fmt.Printf("%2d: %v (up=%v forward=%v)\n", k, r, r.Up(), r.Forward())
	}
	return nil
}
