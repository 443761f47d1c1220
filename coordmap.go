package voxorient

// UV is a 2D coordinate in a face's own local plane.
type UV struct {
	U, V int32
}

// AxisMap selects, optionally negated, one of the two components of a UV —
// the building block of a CoordMap.
type AxisMap uint8

const (
	PosU AxisMap = iota
	PosV
	NegU
	NegV
)

// Apply returns the component of uv that am names, with am's sign.
func (am AxisMap) Apply(uv UV) int32 {
	switch am {
	case PosU:
		return uv.U
	case PosV:
		return uv.V
	case NegU:
		return -uv.U
	default:
		return -uv.V
	}
}

// String renders am as "+u", "+v", "-u" or "-v".
func (am AxisMap) String() string {
	switch am {
	case PosU:
		return "+u"
	case PosV:
		return "+v"
	case NegU:
		return "-u"
	default:
		return "-v"
	}
}

// CoordMap is a signed permutation of a UV's two components: the shape every
// 90-degree-aligned face-to-face coordinate remap takes. X produces the
// mapped U, Y produces the mapped V.
type CoordMap struct {
	X, Y AxisMap
}

// IdentityCoordMap leaves a UV unchanged.
var IdentityCoordMap = CoordMap{X: PosU, Y: PosV}

// Apply remaps uv through cm.
func (cm CoordMap) Apply(uv UV) UV {
	return UV{U: cm.X.Apply(uv), V: cm.Y.Apply(uv)}
}

// Invert returns the unique CoordMap that undoes cm.
func (cm CoordMap) Invert() CoordMap {
	var inv CoordMap
	switch cm.X {
	case PosU:
		inv.X = PosU
	case NegU:
		inv.X = NegU
	case PosV:
		inv.Y = PosU
	case NegV:
		inv.Y = NegU
	}
	switch cm.Y {
	case PosU:
		inv.X = PosV
	case NegU:
		inv.X = NegV
	case PosV:
		inv.Y = PosV
	case NegV:
		inv.Y = NegV
	}
	return inv
}

// String renders cm as "(x,y)" using each AxisMap's name.
func (cm CoordMap) String() string {
	return "(" + cm.X.String() + "," + cm.Y.String() + ")"
}

// faceCoordMap derives the CoordMap that carries a UV on source's own local
// plane to the matching point on Reface(o, source)'s local plane.
//
// It compares where o sends two of source's neighbor faces (Right and Up,
// the +U and +V directions of source's own frame) against the four
// neighbors of the target face. Each comparison fixes one of the two
// AxisMaps; together they fix both, since Right and Up are orthogonal and o
// is a symmetry of the cube, so their images are always an orthogonal pair
// of the target's own four neighbors.
func faceCoordMap(o Orientation, source Face) CoordMap {
	target := o.Reface(source)
	imgRight := o.Reface(source.Right())
	imgUp := o.Reface(source.Up())

	var cm CoordMap
	switch imgRight {
	case target.Right():
		cm.X = PosU
	case target.Left():
		cm.X = NegU
	case target.Up():
		cm.Y = PosU
	case target.Down():
		cm.Y = NegU
	}
	switch imgUp {
	case target.Up():
		cm.Y = PosV
	case target.Down():
		cm.Y = NegV
	case target.Right():
		cm.X = PosV
	case target.Left():
		cm.X = NegV
	}
	return cm
}

// tableSize covers every (flip, rotation, face) combination: 8 * 24 * 6.
const tableSize = 8 * 24 * 6

// tableIndex computes the flat index an Orientation and Face occupy in
// mapCoordTable and sourceCoordTable: flip*144 + rotation_index*6 + face.
func tableIndex(o Orientation, face Face) int {
	return int(o.Flip)*144 + o.Rotation.index()*6 + int(face)
}

var (
	mapCoordTable    [tableSize]CoordMap
	sourceCoordTable [tableSize]CoordMap
)

// init materializes both 1152-entry tables once, at process start, from the
// naive per-face derivation in faceCoordMap. No Orientation operation may
// run concurrently with this; Go guarantees init completes before main and
// before any other package's use of this package, so no caller-visible
// synchronization is needed.
func init() {
	for _, o := range allOrientations() {
		for _, source := range allFaces() {
			mapCoordTable[tableIndex(o, source)] = faceCoordMap(o, source)
		}
		for _, target := range allFaces() {
			source := o.SourceFace(target)
			sourceCoordTable[tableIndex(o, target)] = faceCoordMap(o, source).Invert()
		}
	}
}

// MapFaceCoord returns, for a point uv expressed on face's own local plane
// before o is applied, the coordinates it occupies on Reface(o, face)'s
// local plane afterward. Used by a mesher to remap a textured face's UVs
// when a block's Orientation rotates or flips that face into a new slot.
func MapFaceCoord(o Orientation, face Face, uv UV) UV {
	return mapCoordTable[tableIndex(o, face)].Apply(uv)
}

// SourceFaceCoord is the inverse of MapFaceCoord: given a point uv on face's
// local plane after o is applied, it returns where that point sat on
// SourceFace(o, face)'s local plane beforehand. Used by a face-occlusion
// engine to translate a neighbor's mask position back to the occluder's own
// source-face coordinates for overlap testing.
func SourceFaceCoord(o Orientation, face Face, uv UV) UV {
	return sourceCoordTable[tableIndex(o, face)].Apply(uv)
}
