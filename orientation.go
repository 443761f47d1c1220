package voxorient

// Orientation is a Rotation composed with a Flip, denoting the composite
// action "first rotate, then flip." This order is a hard convention: under
// the opposite order, flipping the Y axis of a block resting on its side
// would act on a different world axis, and "toggle Y-flip of this block"
// would stop commuting with view-independent code.
type Orientation struct {
	Rotation Rotation
	Flip     Flip
}

// IdentityOrientation is the neutral element: identity rotation, zero flip.
// Its packed byte is 0x00.
var IdentityOrientation = Orientation{Rotation: IdentityRotation, Flip: NoFlip}

// NewOrientation builds an Orientation from its rotation and flip parts.
func NewOrientation(r Rotation, fl Flip) Orientation {
	return Orientation{Rotation: r, Flip: fl}
}

// Up returns the face the orientation sends +Y to.
func (o Orientation) Up() Face { return o.Reface(PosY) }

// Forward returns the face the orientation sends +Z to.
func (o Orientation) Forward() Face { return o.Reface(PosZ) }

// Reface applies o's action to a face: rotate, then flip.
func (o Orientation) Reface(f Face) Face {
	return o.Rotation.Reface(f).Flip(o.Flip)
}

// SourceFace is the functional inverse of Reface. Flip is its own inverse,
// so un-doing "rotate then flip" is "un-flip (flip again), then un-rotate".
func (o Orientation) SourceFace(f Face) Face {
	return o.Rotation.SourceFace(f.Flip(o.Flip))
}

// Transform applies o's action to a 3D coordinate: rotate, then flip.
func (o Orientation) Transform(v Vec3) Vec3 {
	return o.Flip.Apply(o.Rotation.Rotate(v))
}

// conjugateFlip carries fl's flipped axes through r: each axis fl flips is
// replaced by the axis r.Reface sends it to. This is what a flip applied
// before a rotation becomes once the rotation is factored out to the left,
// which is exactly the commutation Reorient and Deorient need to fold a
// rotation and a flip from two different Orientations into one normal
// form (rotation, then flip).
func conjugateFlip(fl Flip, r Rotation) Flip {
	var out Flip
	if fl.X() {
		out = out.Compose(axisFlip(r.Reface(PosX).axisOf()))
	}
	if fl.Y() {
		out = out.Compose(axisFlip(r.Reface(PosY).axisOf()))
	}
	if fl.Z() {
		out = out.Compose(axisFlip(r.Reface(PosZ).axisOf()))
	}
	return out
}

func axisFlip(a axis) Flip {
	switch a {
	case axisX:
		return Flip(flipBitX)
	case axisY:
		return Flip(flipBitY)
	default:
		return Flip(flipBitZ)
	}
}

// Reorient composes o and p as "apply o, then apply p". Writing each
// Orientation's action as rotate-then-flip, apply(o) then apply(p) is
// D_p R_p D_o R_o; conjugating o's flip through p's rotation lets that be
// rewritten back into the same rotate-then-flip normal form.
func (o Orientation) Reorient(p Orientation) Orientation {
	rot := o.Rotation.Reorient(p.Rotation)
	fl := p.Flip.Compose(conjugateFlip(o.Flip, p.Rotation))
	return Orientation{Rotation: rot, Flip: fl}
}

// Deorient is the inverse of Reorient: the unique q such that
// q.Reorient(p) == o.
func (o Orientation) Deorient(p Orientation) Orientation {
	rot := o.Rotation.Deorient(p.Rotation)
	fl := conjugateFlip(o.Flip.Compose(p.Flip), p.Rotation.Invert())
	return Orientation{Rotation: rot, Flip: fl}
}

// Invert returns the unique Orientation q such that
// q.Reorient(o) == IdentityOrientation.
func (o Orientation) Invert() Orientation {
	return IdentityOrientation.Deorient(o)
}

// Pack encodes o into a single byte per the external byte-layout contract:
// bits 0-2 up tag, bits 3-4 angle, bits 5-7 flip (x=bit5, y=bit6, z=bit7).
// The zero byte is the identity orientation.
func (o Orientation) Pack() byte {
	return o.Rotation.Pack() | byte(o.Flip)<<5
}

// UnpackOrientation decodes a byte produced by Pack.
func UnpackOrientation(b byte) Orientation {
	return Orientation{
		Rotation: UnpackRotation(b & 0x1F),
		Flip:     Flip(b >> 5),
	}
}

// String renders o as "<rotation> flip=<flip>".
func (o Orientation) String() string {
	return o.Rotation.String() + " flip=" + o.Flip.String()
}

// allOrientations returns all 192 (rotation, flip) pairs. Only 48 are
// distinct as actions (each action has four (rotation, flip) forms), but all 192
// pack/unpack round-trip distinctly, so every scenario and table-building
// loop iterates over all of them.
func allOrientations() []Orientation {
	out := make([]Orientation, 0, 24*8)
	for _, r := range allRotations() {
		for _, fl := range allFlips() {
			out = append(out, Orientation{Rotation: r, Flip: fl})
		}
	}
	return out
}
