package voxorient

import "testing"

func TestOrientationBijectivityOnFaces(t *testing.T) {
	for _, o := range allOrientations() {
		seen := map[Face]bool{}
		for _, f := range allFaces() {
			seen[o.Reface(f)] = true
		}
		if len(seen) != faceCount {
			t.Errorf("Reface(%v, ·) covers %d faces, want %d", o, len(seen), faceCount)
		}
	}
}

func TestOrientationSourceFaceInversion(t *testing.T) {
	for _, o := range allOrientations() {
		for _, f := range allFaces() {
			if got := o.SourceFace(o.Reface(f)); got != f {
				t.Errorf("SourceFace(%v, Reface(%v, %v)) = %v, want %v", o, o, f, got, f)
			}
		}
	}
}

func TestOrientationInverseLaw(t *testing.T) {
	for _, o := range allOrientations() {
		if got := o.Reorient(o.Invert()); got != IdentityOrientation {
			t.Errorf("%v.Reorient(%v.Invert()) = %v, want IdentityOrientation", o, o, got)
		}
	}
}

func TestOrientationComposeHomomorphism(t *testing.T) {
	orientations := allOrientations()
	for _, o := range orientations {
		for _, p := range orientations {
			composed := o.Reorient(p)
			for _, f := range allFaces() {
				got := composed.Reface(f)
				want := p.Reface(o.Reface(f))
				if got != want {
					t.Fatalf("Reface(%v.Reorient(%v), %v) = %v, want %v", o, p, f, got, want)
				}
			}
		}
	}
}

func TestOrientationReverseIndicesCochain(t *testing.T) {
	for _, o := range allOrientations() {
		for _, p := range allOrientations() {
			composed := o.Flip.Compose(p.Flip)
			want := o.Flip.ReverseIndices() != p.Flip.ReverseIndices()
			if got := composed.ReverseIndices(); got != want {
				t.Fatalf("ReverseIndices(Compose(%v, %v)) = %v, want %v", o.Flip, p.Flip, got, want)
			}
		}
	}
}

func TestOrientationIdentitySanity(t *testing.T) {
	if got := UnpackOrientation(0x00); got != IdentityOrientation {
		t.Errorf("UnpackOrientation(0x00) = %v, want IdentityOrientation", got)
	}
	for _, f := range allFaces() {
		if got := IdentityOrientation.Reface(f); got != f {
			t.Errorf("Reface(IdentityOrientation, %v) = %v, want %v", f, got, f)
		}
	}
	p := Vec3{X: 1, Y: -2, Z: 3}
	if got := IdentityOrientation.Transform(p); got != p {
		t.Errorf("Transform(IdentityOrientation, %v) = %v, want %v", p, got, p)
	}
}

func TestOrientationPackUnpackRoundTrip(t *testing.T) {
	for _, o := range allOrientations() {
		if got := UnpackOrientation(o.Pack()); got != o {
			t.Errorf("UnpackOrientation(%v.Pack()) = %v, want %v", o, got, o)
		}
	}
}

func TestOrientationScenarioS6(t *testing.T) {
	// Rotation(up=+X, angle=2): built directly via the dense struct fields
	// to pin down angle exactly, rather than going through FromUpAndForward
	// and having to know in advance which forward face angle=2 lands on.
	r := Rotation{up: PosX, angle: 2}
	o := NewOrientation(r, NewFlip(true, false, false))

	seen := map[Face]bool{}
	for _, f := range allFaces() {
		seen[o.Reface(f)] = true
	}
	if len(seen) != faceCount {
		t.Errorf("o.Reface(·) covers %d faces, want %d", len(seen), faceCount)
	}
	if !o.Flip.ReverseIndices() {
		t.Error("ReverseIndices(Flip(x=1)) = false, want true")
	}
}

func TestOrientationReorientWithPureFlip(t *testing.T) {
	// o is a pure flip (identity rotation, X reflected). p is a pure
	// rotation (up=+Z, identity flip) that sends +X to +Y. Composing
	// o then p must equal "rotate by p, then flip whichever axis the
	// rotation carried X's reflection onto" -- here p sends +X to +Y, so
	// the composed Orientation reflects Y, not X.
	o := NewOrientation(IdentityRotation, NewFlip(true, false, false))
	pr, ok := FromUpAndForward(PosZ, PosX)
	if !ok {
		t.Fatal("FromUpAndForward(+Z, +X) unexpectedly failed")
	}
	p := NewOrientation(pr, NoFlip)

	composed := o.Reorient(p)
	for _, f := range allFaces() {
		got := composed.Reface(f)
		want := p.Reface(o.Reface(f))
		if got != want {
			t.Fatalf("Reface(o.Reorient(p), %v) = %v, want %v", f, got, want)
		}
	}
	if composed.Flip.X() {
		t.Error("composed.Flip still reflects X; expected the rotation to carry it onto Y")
	}
	if !composed.Flip.Y() {
		t.Error("composed.Flip does not reflect Y, want it to after p carries o's X-flip onto Y")
	}
}

func TestOrientationTransformAgreesWithReface(t *testing.T) {
	for _, o := range allOrientations() {
		for _, f := range allFaces() {
			got := o.Transform(f.unitVector())
			want := o.Reface(f).unitVector()
			if got != want {
				t.Errorf("Transform(%v, unitVector(%v)) = %v, want %v", o, f, got, want)
			}
		}
	}
}
