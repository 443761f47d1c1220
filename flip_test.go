package voxorient

import "testing"

func TestFlipApplyInvolution(t *testing.T) {
	p := Vec3{X: 1, Y: -1, Z: 1}
	for _, fl := range allFlips() {
		if got := fl.Apply(fl.Apply(p)); got != p {
			t.Errorf("Apply(%v, Apply(%v, %v)) = %v, want %v", fl, fl, p, got, p)
		}
	}
}

func TestFlipComposeIsXOR(t *testing.T) {
	for _, a := range allFlips() {
		for _, b := range allFlips() {
			if got := a.Compose(b); got != a^b {
				t.Errorf("Compose(%v, %v) = %v, want %v", a, b, got, a^b)
			}
		}
	}
}

func TestFlipComposeSelfInverse(t *testing.T) {
	for _, a := range allFlips() {
		if got := a.Compose(a); got != NoFlip {
			t.Errorf("Compose(%v, %v) = %v, want NoFlip", a, a, got)
		}
	}
}

func TestFlipReverseIndicesCochain(t *testing.T) {
	for _, a := range allFlips() {
		for _, b := range allFlips() {
			composed := a.Compose(b)
			want := a.ReverseIndices() != b.ReverseIndices()
			if got := composed.ReverseIndices(); got != want {
				t.Errorf("ReverseIndices(Compose(%v, %v)) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestFlipScenarioS3(t *testing.T) {
	fl := NewFlip(false, true, false)
	got := fl.Apply(Vec3{X: 1, Y: 2, Z: 3})
	want := Vec3{X: 1, Y: -2, Z: 3}
	if got != want {
		t.Errorf("Apply(Flip(y=1), (1,2,3)) = %v, want %v", got, want)
	}
	if !fl.ReverseIndices() {
		t.Error("ReverseIndices(Flip(y=1)) = false, want true")
	}
}

func TestFlipQueryMethods(t *testing.T) {
	fl := NewFlip(true, false, true)
	if !fl.X() || fl.Y() || !fl.Z() {
		t.Errorf("NewFlip(true,false,true) queries = (%v,%v,%v), want (true,false,true)", fl.X(), fl.Y(), fl.Z())
	}
}

func TestFlipString(t *testing.T) {
	if NoFlip.String() != "-" {
		t.Errorf("NoFlip.String() = %q, want %q", NoFlip.String(), "-")
	}
	if got := NewFlip(true, false, true).String(); got != "XZ" {
		t.Errorf("NewFlip(true,false,true).String() = %q, want %q", got, "XZ")
	}
}
