// This file is part of CRTBeam.
//
// CRTBeam is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// CRTBeam is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with CRTBeam.  If not, see <https://www.gnu.org/licenses/>.

package frames_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/jetsetilly/crtbeam/frames"
	"github.com/jetsetilly/crtbeam/test"
)

// uniform creates a frame filled with a single colour.
func uniform(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func TestNewHistory(t *testing.T) {
	_, err := frames.NewHistory(0, 10)
	test.ExpectedFailure(t, err)

	his, err := frames.NewHistory(8, 8)
	test.ExpectedSuccess(t, err)

	w, h := his.Size()
	test.Equate(t, w, 8)
	test.Equate(t, h, 8)
}

func TestUncapturedCycles(t *testing.T) {
	his, err := frames.NewHistory(4, 4)
	test.ExpectedSuccess(t, err)

	// nothing captured yet
	c, ok := his.Bilinear(0, 0.5, 0.5)
	test.ExpectedFailure(t, ok)
	test.EquateFloat(t, c.R+c.G+c.B, 0, 0)

	// negative cycles are never valid
	_, ok = his.Bilinear(-1, 0.5, 0.5)
	test.ExpectedFailure(t, ok)
}

func TestCaptureAndSample(t *testing.T) {
	his, err := frames.NewHistory(4, 4)
	test.ExpectedSuccess(t, err)

	his.Capture(0, uniform(4, 4, color.RGBA{R: 255, G: 51, B: 0, A: 255}))

	// a uniform frame samples identically everywhere, whatever the
	// interpolation weights
	for _, x := range []float64{0, 0.3, 0.99} {
		for _, y := range []float64{0, 0.3, 0.99} {
			c, ok := his.Bilinear(0, x, y)
			test.ExpectedSuccess(t, ok)
			test.EquateFloat(t, c.R, 1, 0)
			test.EquateFloat(t, c.G, 0.2, 1e-9)
			test.EquateFloat(t, c.B, 0, 0)
		}
	}
}

func TestBilinearBlend(t *testing.T) {
	his, err := frames.NewHistory(2, 1)
	test.ExpectedSuccess(t, err)

	// one black texel, one white texel
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	his.Capture(0, img)

	// sampling at a texel centre returns the texel exactly
	c, ok := his.Bilinear(0, 0.25, 0.5)
	test.ExpectedSuccess(t, ok)
	test.EquateFloat(t, c.R, 0, 0)

	c, _ = his.Bilinear(0, 0.75, 0.5)
	test.EquateFloat(t, c.R, 1, 0)

	// half way between the two texel centres
	c, _ = his.Bilinear(0, 0.5, 0.5)
	test.EquateFloat(t, c.R, 0.5, 1e-9)

	// x=0 is half way between the white texel (wrapped) and the black texel
	c, _ = his.Bilinear(0, 0, 0.5)
	test.EquateFloat(t, c.R, 0.5, 1e-9)
}

func TestRingReplacement(t *testing.T) {
	his, err := frames.NewHistory(2, 2)
	test.ExpectedSuccess(t, err)

	his.Capture(0, uniform(2, 2, color.RGBA{R: 10, A: 255}))
	his.Capture(1, uniform(2, 2, color.RGBA{R: 20, A: 255}))
	his.Capture(2, uniform(2, 2, color.RGBA{R: 30, A: 255}))

	// all three cycles resident
	for cycle := 0; cycle <= 2; cycle++ {
		_, ok := his.Bilinear(cycle, 0.5, 0.5)
		test.ExpectedSuccess(t, ok)
	}

	// capturing cycle 3 evicts cycle 0
	his.Capture(3, uniform(2, 2, color.RGBA{R: 40, A: 255}))

	_, ok := his.Bilinear(0, 0.5, 0.5)
	test.ExpectedFailure(t, ok)
	_, ok = his.Bilinear(3, 0.5, 0.5)
	test.ExpectedSuccess(t, ok)
}

func TestCaptureResamples(t *testing.T) {
	his, err := frames.NewHistory(4, 4)
	test.ExpectedSuccess(t, err)

	// source frame is larger than the history resolution
	his.Capture(0, uniform(16, 16, color.RGBA{R: 255, G: 255, B: 255, A: 255}))

	c, ok := his.Bilinear(0, 0.5, 0.5)
	test.ExpectedSuccess(t, ok)
	test.EquateFloat(t, c.R, 1, 0)
	test.EquateFloat(t, c.G, 1, 0)
	test.EquateFloat(t, c.B, 1, 0)
}
