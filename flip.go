package voxorient

// axis names one of the three principal axes, used internally to connect
// a Face to the Flip bit that reflects it.
type axis uint8

const (
	axisX axis = iota
	axisY
	axisZ
)

// Flip is a three-bit axis-reflection mask: independently reflecting across
// X, Y and Z. The zero value is the identity (no axis flipped).
type Flip uint8

const (
	flipBitX = 1 << iota
	flipBitY
	flipBitZ
)

// NoFlip is the identity Flip.
const NoFlip Flip = 0

// NewFlip builds a Flip from independent per-axis booleans.
func NewFlip(x, y, z bool) Flip {
	var fl Flip
	if x {
		fl |= flipBitX
	}
	if y {
		fl |= flipBitY
	}
	if z {
		fl |= flipBitZ
	}
	return fl
}

// X reports whether the X axis is reflected.
func (fl Flip) X() bool { return fl&flipBitX != 0 }

// Y reports whether the Y axis is reflected.
func (fl Flip) Y() bool { return fl&flipBitY != 0 }

// Z reports whether the Z axis is reflected.
func (fl Flip) Z() bool { return fl&flipBitZ != 0 }

// hasAxis reports whether the bit for the given axis is set.
func (fl Flip) hasAxis(a axis) bool {
	switch a {
	case axisX:
		return fl.X()
	case axisY:
		return fl.Y()
	default:
		return fl.Z()
	}
}

// Compose returns the Flip obtained by applying fl then other. Flip
// composition is bitwise XOR: commutative and self-inverse.
func (fl Flip) Compose(other Flip) Flip {
	return fl ^ other
}

// ReverseIndices reports the parity of fl: true when an odd number of axes
// are reflected. A mesh transformed through any Orientation whose Flip
// satisfies this predicate must have its triangle winding reversed to keep
// face normals consistent under backface culling.
func (fl Flip) ReverseIndices() bool {
	bits := 0
	if fl.X() {
		bits++
	}
	if fl.Y() {
		bits++
	}
	if fl.Z() {
		bits++
	}
	return bits%2 == 1
}

// Apply negates each component of p whose axis bit is set in fl. This is a
// linear map: Apply(fl, p+q) == Apply(fl, p) + Apply(fl, q).
func (fl Flip) Apply(p Vec3) Vec3 {
	if fl.X() {
		p.X = -p.X
	}
	if fl.Y() {
		p.Y = -p.Y
	}
	if fl.Z() {
		p.Z = -p.Z
	}
	return p
}

// String renders fl as the set of flipped axes, e.g. "XZ", or "-" for NoFlip.
func (fl Flip) String() string {
	if fl == NoFlip {
		return "-"
	}
	s := ""
	if fl.X() {
		s += "X"
	}
	if fl.Y() {
		s += "Y"
	}
	if fl.Z() {
		s += "Z"
	}
	return s
}

// allFlips returns the eight Flip values in bit order, for exhaustive iteration.
func allFlips() []Flip {
	out := make([]Flip, 8)
	for i := range out {
		out[i] = Flip(i)
	}
	return out
}
