package imgutil

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// RoundCorners returns a copy of img with transparent rounded corners of
// the given radius (in pixels).  A non-positive radius returns an unmodified
// copy; a radius larger than half the smaller dimension is clamped.
func RoundCorners(img image.Image, radius int) *image.NRGBA {
	out := imaging.Clone(img)
	if radius <= 0 {
		return out
	}

	b := out.Bounds()
	w, h := b.Dx(), b.Dy()
	if limit := min(w, h) / 2; radius > limit {
		radius = limit
	}

	// Corner centers in image coordinates; a pixel is cleared when it lies
	// inside a corner square but outside the quarter circle.
	corners := [4][2]int{
		{radius - 1, radius - 1}, // top-left
		{w - radius, radius - 1}, // top-right
		{radius - 1, h - radius}, // bottom-left
		{w - radius, h - radius}, // bottom-right
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inSquare := (x < radius || x >= w-radius) && (y < radius || y >= h-radius)
			if !inSquare {
				continue
			}
			if outsideAll(x, y, corners, radius) {
				i := out.PixOffset(b.Min.X+x, b.Min.Y+y)
				out.Pix[i+3] = 0
			}
		}
	}
	return out
}

// RoundCornersFile reads in, rounds its corners and writes the result to
// out.  Format detection (and the unsupported-format error) comes from the
// imaging library; use a PNG output to keep the transparency.
func RoundCornersFile(in, out string, radius int) error {
	img, err := imaging.Open(in)
	if err != nil {
		return fmt.Errorf("imgutil: open %s: %w", in, err)
	}
	if err = imaging.Save(RoundCorners(img, radius), out); err != nil {
		return fmt.Errorf("imgutil: save %s: %w", out, err)
	}
	return nil
}

// outsideAll reports whether (x, y) lies beyond every corner circle.
func outsideAll(x, y int, corners [4][2]int, radius int) bool {
	for _, c := range corners {
		dx, dy := x-c[0], y-c[1]
		if dx*dx+dy*dy <= radius*radius {
			return false
		}
	}
	return true
}
