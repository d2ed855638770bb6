package presenter

import (
	"errors"
	"testing"
	"time"

	"github.com/varkel/widget-spy-go/domain/frame"
	"github.com/varkel/widget-spy-go/domain/region"
)

type stubClip struct {
	texts []string
	err   error
}

func (c *stubClip) Write(text string) error {
	c.texts = append(c.texts, text)
	return c.err
}

// newRegionFixture wires a presenter against an 800x600 frame with the copy
// mode cycled to frame coordinates, so clipboard text is easy to assert on.
func newRegionFixture(clip *stubClip, store func(region.Rect)) (*RegionPresenter, *frame.Converter) {
	conv := frame.NewConverter()
	conv.SetFrame(frame.Area{X: 0, Y: 0, Width: 800, Height: 600})
	cm := frame.NewCopyMode(conv)
	cm.Cycle() // percentage -> frame coordinates
	p := NewRegionPresenter(cm, conv, clip, func() float64 { return 1 }, store, nil)
	return p, conv
}

func TestRegionPresenter_DragCommitsToClipboardAndStore(t *testing.T) {
	clip := &stubClip{}
	var stored []region.Rect
	p, _ := newRegionFixture(clip, func(r region.Rect) { stored = append(stored, r) })

	p.ActivateBox(nil)
	p.Tick(time.Now())

	p.PointerDown(400, 300)
	p.PointerMove(410, 305)
	p.PointerUp()

	if len(clip.texts) != 1 || clip.texts[0] != "330, 245, 490, 365" {
		t.Fatalf("clipboard = %q", clip.texts)
	}
	want := region.Rect{X: 330, Y: 245, W: 160, H: 120}
	if len(stored) != 1 || stored[0] != want {
		t.Fatalf("stored = %+v, want [%+v]", stored, want)
	}
}

func TestRegionPresenter_CornerResize(t *testing.T) {
	clip := &stubClip{}
	p, _ := newRegionFixture(clip, nil)

	p.ActivateBox(&region.Rect{X: 200, Y: 150, W: 400, H: 300})

	// Grab the NE corner and pull it up and out.
	p.PointerDown(600, 150)
	p.PointerMove(620, 130)
	p.PointerUp()

	if len(clip.texts) != 1 || clip.texts[0] != "200, 130, 620, 450" {
		t.Fatalf("clipboard = %q", clip.texts)
	}
}

func TestRegionPresenter_OverlaySnapsBoxEdges(t *testing.T) {
	clip := &stubClip{}
	p, _ := newRegionFixture(clip, nil)
	p.SetOverlay(true) // zoom 1 puts the grid step at 10

	p.ActivateBox(&region.Rect{X: 3, Y: 3, W: 47, H: 47})
	p.PointerDown(25, 25)
	p.PointerMove(25, 25)
	p.PointerUp()

	if len(clip.texts) != 1 || clip.texts[0] != "0, 0, 50, 50" {
		t.Fatalf("clipboard = %q", clip.texts)
	}
}

func TestRegionPresenter_SquareSizeOps(t *testing.T) {
	clip := &stubClip{}
	p, _ := newRegionFixture(clip, nil)

	p.ActivateSquare()
	p.Tick(time.Now())

	p.SizeUp()
	if len(clip.texts) != 1 || clip.texts[0] != "360, 260, 440, 340" {
		t.Fatalf("clipboard = %q", clip.texts)
	}

	// Size operations only apply while the square is the active tool.
	p.ActivateBox(nil)
	p.SizeUp()
	if p.Square().Size() != 80 {
		t.Fatalf("size = %d, SizeUp must be inert for the box tool", p.Square().Size())
	}
}

func TestRegionPresenter_GridLinesFollowOverlayAndFrame(t *testing.T) {
	p, conv := newRegionFixture(&stubClip{}, nil)
	conv.SetFrame(frame.Area{X: 0, Y: 0, Width: 100, Height: 50})

	if p.GridLines() != nil {
		t.Fatal("no grid lines while the overlay is off")
	}
	p.SetOverlay(true)
	// Step 10 at zoom 1: 11 vertical plus 6 horizontal lines.
	if got := len(p.GridLines()); got != 17 {
		t.Fatalf("len(lines) = %d, want 17", got)
	}
	conv.Clear()
	if p.GridLines() != nil {
		t.Fatal("no grid lines without a frame")
	}
}

func TestRegionPresenter_ClipboardFailureIsTolerated(t *testing.T) {
	clip := &stubClip{err: errors.New("clipboard unavailable")}
	var stored []region.Rect
	p, _ := newRegionFixture(clip, func(r region.Rect) { stored = append(stored, r) })

	p.ActivateBox(nil)
	p.Tick(time.Now())
	p.PointerDown(400, 300)
	p.PointerMove(405, 300)
	p.PointerUp()

	if len(stored) != 1 {
		t.Fatalf("stored = %d, write failure must not block persistence", len(stored))
	}
}

func TestRegionPresenter_CycleCopyMode(t *testing.T) {
	conv := frame.NewConverter()
	p := NewRegionPresenter(frame.NewCopyMode(conv), conv, nil, nil, nil, nil)
	for _, want := range []frame.Mode{frame.ModeFrameCoords, frame.ModeScreenCoords, frame.ModePercentage} {
		if got := p.CycleCopyMode(); got != want {
			t.Fatalf("CycleCopyMode() = %v, want %v", got, want)
		}
	}
}

func TestRegionPresenter_DeactivateIgnoresPointer(t *testing.T) {
	clip := &stubClip{}
	p, _ := newRegionFixture(clip, nil)
	p.ActivateBox(&region.Rect{X: 10, Y: 10, W: 100, H: 100})
	p.Deactivate()

	p.PointerDown(50, 50)
	p.PointerMove(60, 60)
	p.PointerUp()

	if len(clip.texts) != 0 {
		t.Fatalf("clipboard = %q, want no commits", clip.texts)
	}
	if _, ok := p.Active(); ok {
		t.Fatal("no tool should be active")
	}
}
