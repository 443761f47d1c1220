// Package tui is the interactive, bubbletea-driven explorer for the
// orientation algebra: an unfolded-cube-net view that composes
// Orientations live as the user presses keys, and cycles through the 24
// canonical rotation presets.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	voxorient "github.com/ErisianArchitect/voxel-orientations"
)

// Two fixed generator rotations the model composes, directly or inverted,
// onto the current Orientation in response to key presses. Each is just some valid
// orthogonal (up, forward) pair; picking a different valid pair only
// changes which direction a key press visually turns the net, not whether
// it is a valid rotation.
var (
	spinGenerator, _ = voxorient.FromUpAndForward(voxorient.PosY, voxorient.PosX)
	tiltGenerator, _ = voxorient.FromUpAndForward(voxorient.PosZ, voxorient.NegY)
)

type model struct {
	orientation voxorient.Orientation
	cyclePreset int
	message     string
	quitting    bool
}

// New returns the initial model, starting from the identity Orientation.
func New() *model {
	return &model{orientation: voxorient.IdentityOrientation}
}

// Run starts the interactive explorer.
func Run() error {
	p := tea.NewProgram(New())
	_, err := p.Run()
	return err
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	spin := voxorient.NewOrientation(spinGenerator, voxorient.NoFlip)
	tilt := voxorient.NewOrientation(tiltGenerator, voxorient.NoFlip)

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "left", "j":
		m.orientation = m.orientation.Reorient(spin)
		m.message = "spin +1"
	case "right", "k":
		m.orientation = m.orientation.Reorient(spin.Invert())
		m.message = "spin -1"
	case "up", "i":
		m.orientation = m.orientation.Reorient(tilt)
		m.message = "tilt +1"
	case "down", "m":
		m.orientation = m.orientation.Reorient(tilt.Invert())
		m.message = "tilt -1"
	case "x":
		m.orientation = voxorient.NewOrientation(m.orientation.Rotation, m.orientation.Flip.Compose(voxorient.NewFlip(true, false, false)))
		m.message = "toggled flip X"
	case "y":
		m.orientation = voxorient.NewOrientation(m.orientation.Rotation, m.orientation.Flip.Compose(voxorient.NewFlip(false, true, false)))
		m.message = "toggled flip Y"
	case "z":
		m.orientation = voxorient.NewOrientation(m.orientation.Rotation, m.orientation.Flip.Compose(voxorient.NewFlip(false, false, true)))
		m.message = "toggled flip Z"
	case "c":
		m.cyclePreset = (m.cyclePreset + 1) % 24
		m.orientation = voxorient.NewOrientation(voxorient.IdentityRotation.Cycle(m.cyclePreset), m.orientation.Flip)
		m.message = fmt.Sprintf("preset %d/24", m.cyclePreset)
	case "r":
		m.orientation = voxorient.IdentityOrientation
		m.cyclePreset = 0
		m.message = "reset"
	}

	return m, nil
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	s := titleStyle.Render("voxorient — orientation explorer") + "\n\n"
	s += renderNet(m.orientation) + "\n"
	s += statusStyle.Render(fmt.Sprintf("Orientation: %v", m.orientation)) + "\n"
	s += phaseStyle.Render(fmt.Sprintf("Packed byte: 0x%02X", m.orientation.Pack())) + "\n"
	if m.orientation.Flip.ReverseIndices() {
		s += errorStyle.Render("Reverse indices: true (flip parity odd)") + "\n"
	} else {
		s += statusStyle.Render("Reverse indices: false") + "\n"
	}
	if m.message != "" {
		s += moveStyle.Render(m.message) + "\n"
	}
	s += "\n" + helpStyle.Render("left/right: spin  up/down: tilt  x/y/z: flip axis  c: cycle preset  r: reset  q: quit")
	return s
}
