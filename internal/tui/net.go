package tui

import (
	"fmt"
	"strings"

	voxorient "github.com/ErisianArchitect/voxel-orientations"
)

// A net cell is cellWidth (5) characters wide, 3 tall: enough room for a
// one-letter position label and a face's short name.
const cellWidth = 5

func netCellBlank() []string {
	return []string{strings.Repeat(" ", cellWidth), strings.Repeat(" ", cellWidth), strings.Repeat(" ", cellWidth)}
}

func netCellFace(label string, f voxorient.Face) []string {
	return []string{
		strings.Repeat(" ", cellWidth),
		fmt.Sprintf(" %s %s", label, f.String()),
		strings.Repeat(" ", cellWidth),
	}
}

// renderNet draws an unfolded cube net (a cross layout) showing where o
// carries each face of the unoriented cube: position names are fixed (U, L,
// F, R, B, D matching the unoriented cube), and each cell shows
// Reface(o, position) — the face that position's face is carried to by o.
func renderNet(o voxorient.Orientation) string {
	up := netCellFace("U", o.Reface(voxorient.PosY))
	down := netCellFace("D", o.Reface(voxorient.NegY))
	left := netCellFace("L", o.Reface(voxorient.NegX))
	front := netCellFace("F", o.Reface(voxorient.PosZ))
	right := netCellFace("R", o.Reface(voxorient.PosX))
	back := netCellFace("B", o.Reface(voxorient.NegZ))
	blank := netCellBlank()

	var b strings.Builder
	for row := 0; row < 3; row++ {
		b.WriteString(blank[row])
		b.WriteString(up[row])
		b.WriteString(blank[row])
		b.WriteString(blank[row])
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(left[row])
		b.WriteString(front[row])
		b.WriteString(right[row])
		b.WriteString(back[row])
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(blank[row])
		b.WriteString(down[row])
		b.WriteString(blank[row])
		b.WriteString(blank[row])
		b.WriteString("\n")
	}
	return b.String()
}
