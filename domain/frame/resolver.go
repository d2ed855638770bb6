package frame

import (
	"errors"
	"math"
)

// Aspect is the width/height ratio of the canonical frame region.
const Aspect = 1.5

// ErrDegenerateClient is returned for client rectangles without positive area.
var ErrDegenerateClient = errors.New("frame: degenerate client rectangle")

// Resolve computes the aspect-locked frame area inside the given client
// rectangle. Clients wider than 3:2 fit the frame to the client height and
// center it horizontally; narrower clients fit the width and center
// vertically. Centering uses integer floor division.
func Resolve(client Area) (Area, error) {
	if client.Width <= 0 || client.Height <= 0 {
		return Area{}, ErrDegenerateClient
	}
	ratio := float64(client.Width) / float64(client.Height)
	if ratio > Aspect {
		h := client.Height
		w := int(math.Round(float64(h) * Aspect))
		return Area{
			X:      client.X + (client.Width-w)/2,
			Y:      client.Y,
			Width:  w,
			Height: h,
		}, nil
	}
	w := client.Width
	h := int(math.Round(float64(w) / Aspect))
	return Area{
		X:      client.X,
		Y:      client.Y + (client.Height-h)/2,
		Width:  w,
		Height: h,
	}, nil
}
