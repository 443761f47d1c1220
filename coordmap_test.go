package voxorient

import "testing"

func TestCoordMapRoundTrip(t *testing.T) {
	uv := UV{U: 1, V: -1}
	for _, o := range allOrientations() {
		for _, f := range allFaces() {
			source := o.SourceFace(f)
			mapped := MapFaceCoord(o, source, uv)
			back := SourceFaceCoord(o, f, mapped)
			if back != uv {
				t.Fatalf("o=%v f=%v: SourceFaceCoord(MapFaceCoord(%v)) = %v, want %v", o, f, uv, back, uv)
			}
		}
	}
}

func TestCoordMapInvertRoundTrip(t *testing.T) {
	for _, cm := range []CoordMap{
		IdentityCoordMap,
		{X: PosV, Y: PosU},
		{X: NegU, Y: NegV},
		{X: NegV, Y: NegU},
		{X: PosV, Y: NegU},
		{X: NegU, Y: PosV},
	} {
		inv := cm.Invert()
		uv := UV{U: 3, V: -5}
		if got := inv.Apply(cm.Apply(uv)); got != uv {
			t.Errorf("%v.Invert().Apply(%v.Apply(%v)) = %v, want %v", cm, cm, uv, got, uv)
		}
	}
}

func TestCoordMapIdentityOrientationIsIdentityMap(t *testing.T) {
	uv := UV{U: 2, V: 7}
	for _, f := range allFaces() {
		if got := MapFaceCoord(IdentityOrientation, f, uv); got != uv {
			t.Errorf("MapFaceCoord(Identity, %v, %v) = %v, want %v", f, uv, got, uv)
		}
		if got := SourceFaceCoord(IdentityOrientation, f, uv); got != uv {
			t.Errorf("SourceFaceCoord(Identity, %v, %v) = %v, want %v", f, uv, got, uv)
		}
	}
}

func TestCoordMapValuesAreOrthogonal(t *testing.T) {
	isU := func(am AxisMap) bool { return am == PosU || am == NegU }
	for _, o := range allOrientations() {
		for _, f := range allFaces() {
			cm := mapCoordTable[tableIndex(o, f)]
			if isU(cm.X) == isU(cm.Y) {
				t.Fatalf("o=%v f=%v: CoordMap %v has X and Y on the same axis", o, f, cm)
			}
		}
	}
}
