package frame

// RGB is a single sampled screen pixel.
type RGB struct {
	R, G, B uint8
}

// PixelSampler reads one screen pixel. Implementations are expected to be
// synchronous, fallible and idempotent; errors cause the probing candidate
// to be skipped, never the whole refinement to abort.
type PixelSampler func(x, y int) (RGB, error)

const (
	// refineMaxDiff bounds the width drift the candidate search will correct.
	refineMaxDiff = 4
	// Safe probe range across a multi-monitor desktop.
	sampleMinX = -3840
	sampleMaxX = 7680
)

// Refine nudges a resolved frame whose width is close to target to exactly
// that width. A candidate adjustment is accepted when the pixel just outside
// its left edge and the pixel just outside its right edge differ, taking the
// color discontinuity as evidence of a real window edge. This is a
// best-effort local search with an imperfect oracle: it can false-accept on
// unrelated discontinuities and false-reject anti-aliased edges. The
// original frame is returned whenever no candidate survives.
func Refine(area Area, target int, sample PixelSampler) Area {
	if area.Empty() || target <= 0 {
		return area
	}
	diff := target - area.Width
	if diff == 0 {
		return area
	}
	// Single-pixel drift is the common case; growing the right edge keeps
	// the left edge anchored and needs no sampling.
	if area.Width == target-1 {
		area.Width = target
		return area
	}
	if diff < -refineMaxDiff || diff > refineMaxDiff || sample == nil {
		return area
	}

	midY := area.Y + area.Height/2
	// (left, right) expansion pairs, in priority order. Right-only comes
	// first: downstream consumers treat the left edge as the stable anchor.
	// The split pair puts the odd remainder on the right.
	candidates := [3][2]int{
		{0, diff},
		{diff, 0},
		{diff / 2, diff - diff/2},
	}
	for _, c := range candidates {
		next := Area{
			X:      area.X - c[0],
			Y:      area.Y,
			Width:  area.Width + c[0] + c[1],
			Height: area.Height,
		}
		if next.Width <= 0 {
			continue
		}
		probeL := next.X - 1
		probeR := next.X + next.Width
		if probeL < sampleMinX || probeR >= sampleMaxX {
			continue
		}
		left, err := sample(probeL, midY)
		if err != nil {
			continue
		}
		right, err := sample(probeR, midY)
		if err != nil {
			continue
		}
		if left != right {
			return next
		}
	}
	return area
}
