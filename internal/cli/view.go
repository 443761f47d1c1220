package cli

import (
	"github.com/spf13/cobra"

	"github.com/ErisianArchitect/voxel-orientations/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Launch the interactive orientation explorer",
	Long: `Launch a terminal UI showing an unfolded cube net that updates live as
Orientations are composed via key presses.

Keyboard shortcuts:
  left/right  - spin around the current up axis
  up/down     - tilt forward/backward
  x/y/z       - toggle a flip axis
  c           - jump to the next of the 24 canonical rotation presets
  r           - reset to the identity Orientation
  q/Esc       - quit`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	return tui.Run()
}
