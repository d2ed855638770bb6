package region

import "testing"

func TestHitThreshold_ScalesWithZoom(t *testing.T) {
	cases := []struct {
		scale float64
		want  float64
	}{
		{1, 10},
		{0.5, 20},
		{5, 6}, // clamped at the minimum
		{0, 10},
		{-1, 10},
	}
	for _, tc := range cases {
		if got := hitThreshold(tc.scale); got != tc.want {
			t.Fatalf("hitThreshold(%v) = %v, want %v", tc.scale, got, tc.want)
		}
	}
}

func TestDetectDirection_CornersAndEdges(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 100, H: 100}
	cases := []struct {
		name     string
		px, py   float64
		scale    float64
		want     Direction
		wantHit  bool
	}{
		{"nw corner", 12, 12, 1, DirNW, true},
		{"ne corner at low zoom", 110, 10, 0.5, DirNE, true},
		{"sw corner", 10, 110, 1, DirSW, true},
		{"se corner", 108, 112, 1, DirSE, true},
		{"west edge", 10, 60, 1, DirW, true},
		{"east edge", 112, 60, 1, DirE, true},
		{"north edge", 60, 8, 1, DirN, true},
		{"south edge", 60, 114, 1, DirS, true},
		{"interior", 60, 60, 1, DirNone, false},
		{"far outside", 200, 200, 1, DirNone, false},
	}
	for _, tc := range cases {
		got, ok := detectDirection(r, tc.px, tc.py, tc.scale)
		if got != tc.want || ok != tc.wantHit {
			t.Fatalf("%s: detectDirection = (%v, %v), want (%v, %v)",
				tc.name, got, ok, tc.want, tc.wantHit)
		}
	}
}

func TestDetectDirection_CornerWinsOverEdge(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 100, H: 100}
	// Close to both the west edge and the NW corner; the corner takes it.
	if got, ok := detectDirection(r, 11, 14, 1); !ok || got != DirNW {
		t.Fatalf("got (%v, %v), want (nw, true)", got, ok)
	}
}

func TestGesture_Transitions(t *testing.T) {
	var g gesture
	if !g.beginDrag() {
		t.Fatal("beginDrag from idle should succeed")
	}
	if g.beginDrag() {
		t.Fatal("beginDrag while dragging should fail")
	}
	if g.beginResize(DirE) {
		t.Fatal("beginResize while dragging should fail")
	}
	if !g.finish() {
		t.Fatal("finish should report the drag was active")
	}
	if g.finish() {
		t.Fatal("second finish should report idle")
	}
	if g.beginResize(DirNone) {
		t.Fatal("beginResize without a direction should fail")
	}
	if !g.beginResize(DirSW) {
		t.Fatal("beginResize from idle should succeed")
	}
	if g.State() != StateResizing {
		t.Fatalf("state = %v, want resizing", g.State())
	}
}

func TestMotionScale_GuardsNonPositive(t *testing.T) {
	if got := motionScale(0); got != 1 {
		t.Fatalf("motionScale(0) = %v", got)
	}
	if got := motionScale(2); got != 2 {
		t.Fatalf("motionScale(2) = %v", got)
	}
}
