package voxorient

// Rotation is one of the 24 proper rotations of a cube, represented as the
// pair (up, angle): which face the rotation sends +Y to, and how many
// quarter-turns around that new vertical axis separate it from the
// canonical forward direction for that up face.
type Rotation struct {
	up    Face
	angle uint8 // 0..3
}

// IdentityRotation is the neutral element: up=+Y, angle=0. Its packed byte
// is 0x00.
var IdentityRotation = Rotation{up: PosY, angle: 0}

// neighborsCW lists, for a face U used as a rotation's up axis, the four
// faces orthogonal to U in clockwise order as viewed from outside: Up,
// Right, Down, Left of U's own UV frame (frameTable).
func neighborsCW(u Face) [4]Face {
	return [4]Face{u.Up(), u.Right(), u.Down(), u.Left()}
}

// forwardAt returns the forward face of Rotation(up, angle). angle 0 is
// defined as U.Down() so that Rotation(PosY, 0) has forward PosZ, making it
// the identity.
func forwardAt(u Face, angle uint8) Face {
	return neighborsCW(u)[(angle+2)%4]
}

// angleOfForward is the inverse of forwardAt: the unique angle such that
// forwardAt(u, angle) == forward. forward must be orthogonal to u.
func angleOfForward(u, forward Face) uint8 {
	cw := neighborsCW(u)
	for i, f := range cw {
		if f == forward {
			return uint8((i + 2) % 4)
		}
	}
	return 0
}

// Up returns the rotation's stored up face.
func (r Rotation) Up() Face { return r.up }

// Down returns the opposite of Up.
func (r Rotation) Down() Face { return r.up.Invert() }

// Angle returns the rotation's stored quarter-turn count, 0..3.
func (r Rotation) Angle() uint8 { return r.angle }

// Forward returns the face the rotation sends +Z to.
func (r Rotation) Forward() Face { return forwardAt(r.up, r.angle) }

// Backward returns the opposite of Forward.
func (r Rotation) Backward() Face { return r.Forward().Invert() }

// basisVectors returns the images of the +X, +Y, +Z unit vectors under r,
// derived from (up, forward) by completing a right-handed frame:
// image(X) = image(Y) x image(Z).
func (r Rotation) basisVectors() (imgX, imgY, imgZ Vec3) {
	imgY = r.up.unitVector()
	imgZ = r.Forward().unitVector()
	imgX = cross(imgY, imgZ)
	return
}

// Right returns the face the rotation sends +X to.
func (r Rotation) Right() Face {
	imgX, _, _ := r.basisVectors()
	f, _ := faceFromUnitVector(imgX)
	return f
}

// Left returns the opposite of Right.
func (r Rotation) Left() Face { return r.Right().Invert() }

// cross returns the cross product a x b for the ±1/0 component vectors this
// package deals in.
func cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// dot returns the dot product of a and b.
func dot(a, b Vec3) int32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Rotate applies r's linear action to a 3D coordinate: a signed permutation
// of its components. It agrees with Reface in the sense that
// Rotate(unitVector(f)) == unitVector(Reface(f)) for every Face f.
func (r Rotation) Rotate(v Vec3) Vec3 {
	imgX, imgY, imgZ := r.basisVectors()
	out := Vec3{}
	out = out.Add(scale(imgX, v.X))
	out = out.Add(scale(imgY, v.Y))
	out = out.Add(scale(imgZ, v.Z))
	return out
}

func scale(v Vec3, s int32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Reface is the group action of r on the face set: it maps f to the face
// that f is carried to when r is applied.
func (r Rotation) Reface(f Face) Face {
	out, _ := faceFromUnitVector(r.Rotate(f.unitVector()))
	return out
}

// SourceFace is the functional inverse of Reface: the unique g such that
// Reface(g) == f. Because r's matrix is orthogonal, its inverse is its
// transpose, so SourceFace is computed from dot products against r's basis
// images rather than a second matrix multiply.
func (r Rotation) SourceFace(f Face) Face {
	imgX, imgY, imgZ := r.basisVectors()
	v := f.unitVector()
	out, _ := faceFromUnitVector(Vec3{dot(imgX, v), dot(imgY, v), dot(imgZ, v)})
	return out
}

// FromUpAndForward builds the Rotation whose Up() is up and whose Forward()
// is forward. It fails when forward is not orthogonal to up (forward == up
// or forward == up.Invert()) — the algebra's one error condition.
func FromUpAndForward(up, forward Face) (Rotation, bool) {
	if forward == up || forward == up.Invert() {
		return Rotation{}, false
	}
	return Rotation{up: up, angle: angleOfForward(up, forward)}, true
}

// mustFromUpAndForward is used at call sites that construct up/forward from
// two bijective refacings of an already-orthogonal pair, where §7 of the
// algebra's contract guarantees success. A false ok here means the caller
// broke that guarantee, which is a programming error, not a reportable one.
func mustFromUpAndForward(up, forward Face) Rotation {
	r, ok := FromUpAndForward(up, forward)
	if !ok {
		panic("voxorient: FromUpAndForward received a non-orthogonal up/forward pair from an internal composition; this indicates a broken invariant, not a caller error")
	}
	return r
}

// Reorient composes r and s as "apply r, then apply s": the unique Rotation
// t such that Reface(t, f) == Reface(s, Reface(r, f)) for every Face f.
func (r Rotation) Reorient(s Rotation) Rotation {
	return mustFromUpAndForward(s.Reface(r.Up()), s.Reface(r.Forward()))
}

// Deorient is the inverse of Reorient: the unique t such that
// t.Reorient(s) == r.
func (r Rotation) Deorient(s Rotation) Rotation {
	return mustFromUpAndForward(s.SourceFace(r.Up()), s.SourceFace(r.Forward()))
}

// Invert returns the unique Rotation t such that t.Reorient(r) == IdentityRotation.
func (r Rotation) Invert() Rotation {
	return IdentityRotation.Deorient(r)
}

// index is r's dense canonical enumeration index in 0..23, used by Cycle.
// It is distinct from the single-byte storage packing (see Pack), which
// reserves a wider, sparser bit layout.
func (r Rotation) index() int {
	return int(r.angle)*faceCount + int(r.up)
}

// rotationFromIndex is the inverse of index.
func rotationFromIndex(i int) Rotation {
	return Rotation{up: Face(i % faceCount), angle: uint8(i / faceCount)}
}

// Cycle returns the Rotation offset by the given number of steps in the
// canonical 24-element enumeration, wrapping with Euclidean remainder so
// negative offsets behave correctly.
func (r Rotation) Cycle(offset int) Rotation {
	const n = 24
	i := ((r.index()+offset)%n + n) % n
	return rotationFromIndex(i)
}

// FaceAngle returns the quarter-turn offset, in {0,1,2,3}, induced on f's UV
// frame by applying r: 0 means f's local up maps to the target face's own
// local up, 1 means it maps to the target's local right, and so on around
// the target's frame. FaceAngle(IdentityRotation, f) is always 0.
func (r Rotation) FaceAngle(f Face) int {
	target := r.Reface(f)
	mappedUp := r.Reface(f.Up())
	targetCW := [4]Face{target.Up(), target.Right(), target.Down(), target.Left()}
	for i, tf := range targetCW {
		if tf == mappedUp {
			return i
		}
	}
	return 0
}

// Pack encodes r into a single byte: bits 0-2 are the up face's tag, bits
// 3-4 are the angle. The zero byte is the identity rotation.
func (r Rotation) Pack() byte {
	return byte(r.angle<<3) | byte(r.up)
}

// UnpackRotation decodes a byte produced by Pack.
func UnpackRotation(b byte) Rotation {
	return Rotation{up: Face(b & 0x07), angle: (b >> 3) & 0x03}
}

// String renders r as "<up face>@<angle>", e.g. "+Y@1".
func (r Rotation) String() string {
	return r.up.String() + "@" + []string{"0", "1", "2", "3"}[r.angle]
}

// allRotations returns the 24 rotations in canonical index order.
func allRotations() []Rotation {
	out := make([]Rotation, 24)
	for i := range out {
		out[i] = rotationFromIndex(i)
	}
	return out
}
