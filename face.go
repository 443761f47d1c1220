package voxorient

// Face is one of the six outward normals of an axis-aligned cube.
//
// The tag values are fixed so that the zero value is PosY: a
// default-initialized Face (and, by extension, a default-initialized
// Rotation/Orientation byte) always means "up".
type Face uint8

const (
	PosY Face = iota // +Y, up. The zero value.
	NegY              // -Y, down.
	NegZ              // -Z, away from the viewer; +Y's "up" neighbor, see Up().
	PosZ              // +Z, toward the viewer.
	NegX              // -X, left.
	PosX              // +X, right.
)

// faceCount is the cardinality of Face.
const faceCount = 6

// String returns the short signed-axis name of f, e.g. "+Y", "-X".
func (f Face) String() string {
	switch f {
	case PosY:
		return "+Y"
	case NegY:
		return "-Y"
	case NegZ:
		return "-Z"
	case PosZ:
		return "+Z"
	case NegX:
		return "-X"
	case PosX:
		return "+X"
	default:
		return "?"
	}
}

// invertTable maps each Face to its opposite.
var invertTable = [faceCount]Face{
	PosY: NegY,
	NegY: PosY,
	NegZ: PosZ,
	PosZ: NegZ,
	NegX: PosX,
	PosX: NegX,
}

// Invert returns the opposite face. It is an involution: Invert(Invert(f)) == f.
func (f Face) Invert() Face {
	return invertTable[f]
}

// axisOf returns which of the three Flip axes a Face lies on.
func (f Face) axisOf() axis {
	switch f {
	case PosY, NegY:
		return axisY
	case NegZ, PosZ:
		return axisZ
	default:
		return axisX
	}
}

// Flip returns f reflected through fl: if fl sets the bit for f's axis,
// the opposite face is returned, otherwise f is returned unchanged.
func (f Face) Flip(fl Flip) Face {
	if fl.hasAxis(f.axisOf()) {
		return f.Invert()
	}
	return f
}

// faceFrame holds, for each face, the convention-fixed up/down/left/right
// faces of its own UV plane (§4.1, §3 GLOSSARY of the reference convention).
//
// Down and right are always the inverse of up and left respectively; only
// up and left are independent per face.
type faceFrame struct {
	up, left Face
}

var frameTable = [faceCount]faceFrame{
	PosY: {up: NegZ, left: NegX},
	NegY: {up: PosZ, left: NegX},
	PosX: {up: PosY, left: PosZ},
	NegX: {up: PosY, left: NegZ},
	PosZ: {up: PosY, left: NegX},
	NegZ: {up: PosY, left: PosX},
}

// Up returns the neighbor face in the up direction of f's local UV frame.
func (f Face) Up() Face { return frameTable[f].up }

// Down returns the neighbor face in the down direction of f's local UV frame.
func (f Face) Down() Face { return frameTable[f].up.Invert() }

// Left returns the neighbor face in the left direction of f's local UV frame.
func (f Face) Left() Face { return frameTable[f].left }

// Right returns the neighbor face in the right direction of f's local UV frame.
func (f Face) Right() Face { return frameTable[f].left.Invert() }

// unitVector returns the +1/-1 coordinate of the axis f names, with the
// other two components zero — the point a Rotation's coordinate action must
// agree with (spec property 5).
func (f Face) unitVector() Vec3 {
	switch f {
	case PosY:
		return Vec3{0, 1, 0}
	case NegY:
		return Vec3{0, -1, 0}
	case PosZ:
		return Vec3{0, 0, 1}
	case NegZ:
		return Vec3{0, 0, -1}
	case PosX:
		return Vec3{1, 0, 0}
	case NegX:
		return Vec3{-1, 0, 0}
	default:
		return Vec3{}
	}
}

// faceFromUnitVector is the inverse of unitVector: the face, if any, whose
// unit vector equals v. Rotation and Orientation use it to read a rotated
// coordinate back as a Face.
func faceFromUnitVector(v Vec3) (Face, bool) {
	for f := Face(0); f < faceCount; f++ {
		if f.unitVector() == v {
			return f, true
		}
	}
	return 0, false
}

// allFaces returns the six faces in tag order, for exhaustive iteration.
func allFaces() []Face {
	return []Face{PosY, NegY, NegZ, PosZ, NegX, PosX}
}
