package capture

import (
	"fmt"
	"image"

	"github.com/vova616/screenshot"

	"github.com/varkel/widget-spy-go/domain/frame"
)

// GrabRect captures the given screen rectangle.
func GrabRect(r image.Rectangle) (*image.RGBA, error) {
	img, err := screenshot.CaptureRect(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// SamplePixel reads a single screen pixel through a 1x1 capture. It backs
// the border refiner's pixel oracle; failures surface as errors so the
// refiner can skip the affected candidate.
func SamplePixel(x, y int) (frame.RGB, error) {
	img, err := screenshot.CaptureRect(image.Rect(x, y, x+1, y+1))
	if err != nil {
		return frame.RGB{}, err
	}
	if img == nil || len(img.Pix) < 3 {
		return frame.RGB{}, fmt.Errorf("capture: empty sample at (%d,%d)", x, y)
	}
	return frame.RGB{R: img.Pix[0], G: img.Pix[1], B: img.Pix[2]}, nil
}
