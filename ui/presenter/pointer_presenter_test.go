package presenter

import (
	"errors"
	"testing"
	"time"

	"github.com/varkel/widget-spy-go/domain/frame"
	"github.com/varkel/widget-spy-go/ui/model"
)

type stubStatusView struct {
	lines []string
}

func (v *stubStatusView) SetStatusLine(line string) { v.lines = append(v.lines, line) }

func TestPointerPresenter_PushesStatusLine(t *testing.T) {
	conv := frame.NewConverter()
	conv.SetFrame(frame.Area{X: 100, Y: 200, Width: 800, Height: 600})
	pm := model.NewPointerModel()
	view := &stubStatusView{}
	cursor := func() (int, int, error) { return 500, 500, nil }
	p := NewPointerPresenter(cursor, conv, pm, view, nil)

	p.Tick(time.Now())

	want := "Screen Coords:   500,  500 | Frame Coords:  400,  300 | Frame %: 50.0000%, 50.0000%"
	if len(view.lines) != 1 || view.lines[0] != want {
		t.Fatalf("view lines = %q, want [%q]", view.lines, want)
	}
	if got := pm.StatusLine(); got != want {
		t.Fatalf("model line = %q", got)
	}
	if x, y, ok := pm.Position(); !ok || x != 500 || y != 500 {
		t.Fatalf("position = (%d, %d, %v)", x, y, ok)
	}
}

func TestPointerPresenter_SampleFailureKeepsState(t *testing.T) {
	conv := frame.NewConverter()
	pm := model.NewPointerModel()
	view := &stubStatusView{}
	fail := false
	cursor := func() (int, int, error) {
		if fail {
			return 0, 0, errors.New("cursor unavailable")
		}
		return 10, 20, nil
	}
	p := NewPointerPresenter(cursor, conv, pm, view, nil)

	p.Tick(time.Now())
	fail = true
	p.Tick(time.Now())

	if len(view.lines) != 1 {
		t.Fatalf("view lines = %d, want 1", len(view.lines))
	}
	if x, y, ok := pm.Position(); !ok || x != 10 || y != 20 {
		t.Fatalf("position = (%d, %d, %v), want previous sample retained", x, y, ok)
	}
}
