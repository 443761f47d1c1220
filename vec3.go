package voxorient

// Vec3 is an integer 3D coordinate or direction. The algebra only ever
// permutes and negates components, so integer and unit-float coordinates
// round-trip identically; callers working in floats convert at the edge.
type Vec3 struct {
	X, Y, Z int32
}

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}
