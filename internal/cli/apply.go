package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	voxorient "github.com/ErisianArchitect/voxel-orientations"
	"github.com/ErisianArchitect/voxel-orientations/internal/history"
)

var (
	applyUp      string
	applyForward string
	applyFlip    string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Build an Orientation from an up/forward pair and a flip, and show its effect",
	Long: `Build an Orientation from --up and --forward (two orthogonal faces) and
an optional --flip spec, then print the resulting packed byte and the image
of every face under that Orientation.`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVar(&applyUp, "up", "+Y", "Face the orientation's rotation sends +Y to")
	applyCmd.Flags().StringVar(&applyForward, "forward", "+Z", "Face the orientation's rotation sends +Z to")
	applyCmd.Flags().StringVar(&applyFlip, "flip", "-", "Axes to flip, e.g. \"X\", \"XZ\", or \"-\" for none")
}

func runApply(cmd *cobra.Command, args []string) error {
	up, err := parseFace(applyUp)
	if err != nil {
		return err
	}
	forward, err := parseFace(applyForward)
	if err != nil {
		return err
	}
	fl, err := parseFlip(applyFlip)
	if err != nil {
		return err
	}

	r, ok := voxorient.FromUpAndForward(up, forward)
	if !ok {
		return fmt.Errorf("up=%v and forward=%v are not orthogonal", up, forward)
	}
	o := voxorient.NewOrientation(r, fl)

	fmt.Printf("Orientation: %v\n", o)
	fmt.Printf("Packed byte: 0x%02X\n", o.Pack())
	fmt.Printf("Reverse indices: %v\n", o.Flip.ReverseIndices())
	fmt.Println()
	fmt.Println("Face image:")
	for _, f := range []voxorient.Face{voxorient.PosY, voxorient.NegY, voxorient.PosX, voxorient.NegX, voxorient.PosZ, voxorient.NegZ} {
		fmt.Printf("  %v -> %v\n", f, o.Reface(f))
	}

	if err := recordEntry("apply", o.Pack(), fmt.Sprintf("up=%s forward=%s flip=%s", applyUp, applyForward, applyFlip)); err != nil && verbose {
		fmt.Printf("warning: failed to record history entry: %v\n", err)
	}

	return nil
}

// recordEntry opens the history database (at the configured path or the
// default) and records one invocation. Failures are non-fatal: the history
// store is a convenience, not part of the algebra's contract.
func recordEntry(command string, packed byte, description string) error {
	var db *history.DB
	var err error
	if path := getDBPath(); path != "" {
		db, err = history.Open(path)
	} else {
		db, err = history.OpenDefault()
	}
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.MigrateUp(); err != nil {
		return err
	}

	_, err = history.NewRepository(db).Record(command, packed, description)
	return err
}
