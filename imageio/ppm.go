// Package imageio writes the renderer's pixel buffer in the portable pixmap
// text format: magic P3, a width/height header, then one whitespace
// separated RGB triplet per pixel in row-major order. Grounded in the
// original color.h's write_color/gamma_correct.
package imageio

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"render-engine/geometry"
)

// Gamma is the exponent write_color applies before quantising. The source
// names its parameter for the standard 2.2 display gamma but the function
// body hard-codes pow(x, 1/2) regardless of the argument — a known quirk
// preserved here as the default rather than "corrected" to 1/2.2.
const Gamma = 0.5

// WritePPM writes a P3 image of the given pixel dimensions to w. pixels must
// contain exactly width*height linear (pre-gamma) colours in row-major order,
// top row first.
func WritePPM(w io.Writer, width, height int, pixels []geometry.Vector) error {
	if len(pixels) != width*height {
		return fmt.Errorf("imageio: got %d pixels, want %d (%d×%d)", len(pixels), width*height, width, height)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("imageio: write header: %w", err)
	}

	for _, c := range pixels {
		r, g, b := quantize(c)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return fmt.Errorf("imageio: write pixel: %w", err)
		}
	}

	return bw.Flush()
}

// quantize gamma-corrects a linear colour, clamps to [0,0.999], and scales
// to an 8-bit integer per channel, matching write_color's
// int(256*clamp(pow(c,Gamma),0,0.999)) exactly.
func quantize(c geometry.Vector) (r, g, b int) {
	return quantizeChannel(c.X()), quantizeChannel(c.Y()), quantizeChannel(c.Z())
}

func quantizeChannel(c float64) int {
	gammaCorrected := math.Pow(c, Gamma)
	clamped := clamp(gammaCorrected, 0, 0.999)
	return int(256 * clamped)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
