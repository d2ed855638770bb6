package presenter

import (
	"errors"
	"image"
	"os"
	"testing"

	"github.com/varkel/widget-spy-go/domain/frame"
)

func TestSnapshotPresenter_CapturesFrameRect(t *testing.T) {
	conv := frame.NewConverter()
	conv.SetFrame(frame.Area{X: 100, Y: 200, Width: 30, Height: 20})
	var grabbed image.Rectangle
	grab := func(r image.Rectangle) (*image.RGBA, error) {
		grabbed = r
		return image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy())), nil
	}
	p := NewSnapshotPresenter(grab, conv, t.TempDir(), nil)

	path, err := p.Capture()
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if want := image.Rect(100, 200, 130, 220); grabbed != want {
		t.Fatalf("grabbed = %v, want %v", grabbed, want)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat snapshot: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("snapshot file is empty")
	}
}

func TestSnapshotPresenter_NoFrameFails(t *testing.T) {
	grab := func(r image.Rectangle) (*image.RGBA, error) {
		t.Fatal("must not grab without a frame")
		return nil, nil
	}
	p := NewSnapshotPresenter(grab, frame.NewConverter(), t.TempDir(), nil)
	if _, err := p.Capture(); !errors.Is(err, ErrNoFrame) {
		t.Fatalf("err = %v, want ErrNoFrame", err)
	}
}

func TestSnapshotPresenter_GrabFailurePropagates(t *testing.T) {
	conv := frame.NewConverter()
	conv.SetFrame(frame.Area{Width: 10, Height: 10})
	grab := func(r image.Rectangle) (*image.RGBA, error) {
		return nil, errors.New("capture failed")
	}
	p := NewSnapshotPresenter(grab, conv, t.TempDir(), nil)
	if _, err := p.Capture(); err == nil {
		t.Fatal("expected an error")
	}
}
