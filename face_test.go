package voxorient

import "testing"

func TestFaceInvertInvolution(t *testing.T) {
	for _, f := range allFaces() {
		if got := f.Invert().Invert(); got != f {
			t.Errorf("Invert(Invert(%v)) = %v, want %v", f, got, f)
		}
	}
}

func TestFaceInvertIsOpposite(t *testing.T) {
	for _, f := range allFaces() {
		if f.Invert() == f {
			t.Errorf("Invert(%v) == %v, want a different face", f, f)
		}
	}
}

func TestFaceFrameCoversAllSixFaces(t *testing.T) {
	for _, f := range allFaces() {
		seen := map[Face]bool{
			f:          true,
			f.Invert(): true,
			f.Up():     true,
			f.Down():   true,
			f.Left():   true,
			f.Right():  true,
		}
		if len(seen) != faceCount {
			t.Errorf("face %v: {self,invert,up,down,left,right} covers %d faces, want %d", f, len(seen), faceCount)
		}
	}
}

func TestFaceUpDownAreOpposite(t *testing.T) {
	for _, f := range allFaces() {
		if f.Up().Invert() != f.Down() {
			t.Errorf("%v: Up().Invert() = %v, Down() = %v", f, f.Up().Invert(), f.Down())
		}
	}
}

func TestFaceLeftRightAreOpposite(t *testing.T) {
	for _, f := range allFaces() {
		if f.Left().Invert() != f.Right() {
			t.Errorf("%v: Left().Invert() = %v, Right() = %v", f, f.Left().Invert(), f.Right())
		}
	}
}

func TestFaceUnitVectorRoundTrip(t *testing.T) {
	for _, f := range allFaces() {
		got, ok := faceFromUnitVector(f.unitVector())
		if !ok {
			t.Fatalf("faceFromUnitVector(%v.unitVector()) reported not found", f)
		}
		if got != f {
			t.Errorf("faceFromUnitVector(%v.unitVector()) = %v, want %v", f, got, f)
		}
	}
}

func TestFaceString(t *testing.T) {
	want := map[Face]string{PosY: "+Y", NegY: "-Y", NegZ: "-Z", PosZ: "+Z", NegX: "-X", PosX: "+X"}
	for f, s := range want {
		if got := f.String(); got != s {
			t.Errorf("%v.String() = %q, want %q", f, got, s)
		}
	}
}
