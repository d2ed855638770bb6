package presenter

import (
	"errors"
	"testing"

	"github.com/varkel/widget-spy-go/domain/frame"
)

func TestLocatePresenter_NormalizesAndReports(t *testing.T) {
	conv := frame.NewConverter()
	conv.SetFrame(frame.Area{X: 100, Y: 200, Width: 800, Height: 600})
	view := &stubStatusView{}
	p := NewLocatePresenter(conv, view, nil)

	fx, fy, err := p.Locate("0.5, 0.5")
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if fx != 400 || fy != 300 {
		t.Fatalf("frame point = (%d, %d), want (400, 300)", fx, fy)
	}
	want := frame.StatusLine(500, 500, conv)
	if len(view.lines) != 1 || view.lines[0] != want {
		t.Fatalf("view lines = %q, want [%q]", view.lines, want)
	}
}

func TestLocatePresenter_ClampsOutOfFramePoints(t *testing.T) {
	conv := frame.NewConverter()
	conv.SetFrame(frame.Area{X: 0, Y: 0, Width: 800, Height: 600})
	p := NewLocatePresenter(conv, nil, nil)

	// Screen-space input beyond the frame clamps to the frame extent.
	fx, fy, err := p.Locate("1920, 1080")
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if fx != 800 || fy != 600 {
		t.Fatalf("frame point = (%d, %d), want (800, 600)", fx, fy)
	}
}

func TestLocatePresenter_RejectsMalformedText(t *testing.T) {
	p := NewLocatePresenter(frame.NewConverter(), nil, nil)
	if _, _, err := p.Locate("not coordinates"); !errors.Is(err, frame.ErrMalformedPoint) {
		t.Fatalf("err = %v, want ErrMalformedPoint", err)
	}
}
