package cli

import (
	"fmt"
	"strings"

	voxorient "github.com/ErisianArchitect/voxel-orientations"
)

// parseFace parses a signed-axis face name such as "+Y" or "-x" (case
// insensitive) into a Face.
func parseFace(s string) (voxorient.Face, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "+Y", "Y":
		return voxorient.PosY, nil
	case "-Y":
		return voxorient.NegY, nil
	case "+Z", "Z":
		return voxorient.PosZ, nil
	case "-Z":
		return voxorient.NegZ, nil
	case "+X", "X":
		return voxorient.PosX, nil
	case "-X":
		return voxorient.NegX, nil
	default:
		return 0, fmt.Errorf("invalid face %q: expected one of +X -X +Y -Y +Z -Z", s)
	}
}

// parseFlip parses a flip spec such as "XZ", "y", or "-" (no flip) into a Flip.
func parseFlip(s string) (voxorient.Flip, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return voxorient.NoFlip, nil
	}
	var x, y, z bool
	for _, c := range strings.ToUpper(s) {
		switch c {
		case 'X':
			x = true
		case 'Y':
			y = true
		case 'Z':
			z = true
		default:
			return 0, fmt.Errorf("invalid flip spec %q: expected a combination of X, Y, Z", s)
		}
	}
	return voxorient.NewFlip(x, y, z), nil
}
