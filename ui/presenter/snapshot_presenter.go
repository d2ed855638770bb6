package presenter

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/varkel/widget-spy-go/domain/frame"
)

// FrameGrabber captures a screen rectangle.
type FrameGrabber func(image.Rectangle) (*image.RGBA, error)

// ErrNoFrame is returned when a snapshot is requested while the tracker has
// no resolved frame.
var ErrNoFrame = errors.New("presenter: no frame resolved")

// SnapshotPresenter captures the refined frame rectangle and writes it to a
// timestamped PNG in the snapshot directory.
type SnapshotPresenter struct {
	Grab FrameGrabber
	Conv *frame.Converter
	Dir  string

	logger *slog.Logger
}

func NewSnapshotPresenter(grab FrameGrabber, conv *frame.Converter, dir string, logger *slog.Logger) *SnapshotPresenter {
	return &SnapshotPresenter{Grab: grab, Conv: conv, Dir: dir, logger: logger}
}

// Capture grabs the current frame rectangle and saves it, returning the
// written path.
func (p *SnapshotPresenter) Capture() (string, error) {
	if p == nil || p.Grab == nil || p.Conv == nil {
		return "", ErrNoFrame
	}
	a, ok := p.Conv.Frame()
	if !ok {
		return "", ErrNoFrame
	}
	img, err := p.Grab(a.Bounds())
	if err != nil {
		return "", fmt.Errorf("grab frame: %w", err)
	}
	name := fmt.Sprintf("frame-%s.png", time.Now().Format("20060102-150405"))
	path := filepath.Join(p.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", err
	}
	if p.logger != nil {
		p.logger.Info("frame snapshot written", "path", path,
			"width", a.Width, "height", a.Height)
	}
	return path, nil
}
