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

package beam

import (
	"image"
	"testing"

	"github.com/jetsetilly/crtbeam/digest"
	"github.com/jetsetilly/crtbeam/frames"
	"github.com/jetsetilly/crtbeam/test"
)

// gradient frame so that every pixel of the render differs
func gradientFrame(w, h int, seed uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i] = uint8(x*255/w) + seed
			img.Pix[i+1] = uint8(y * 255 / h)
			img.Pix[i+2] = seed
			img.Pix[i+3] = 255
		}
	}
	return img
}

// rendering must be byte-identical regardless of how the image is
// partitioned between workers
func TestRenderDeterminism(t *testing.T) {
	const w = 64
	const h = 48

	his, err := frames.NewHistory(w, h)
	test.ExpectedSuccess(t, err)
	for cycle := 0; cycle <= 2; cycle++ {
		his.Capture(cycle, gradientFrame(w, h, uint8(cycle*10)))
	}

	sim, err := NewSimulator(NewConfig(), his)
	test.ExpectedSuccess(t, err)

	digests := make([]string, 0, 3)
	for _, workers := range []int{1, 3, 16} {
		var dig digest.Video
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		for frameIndex := 8; frameIndex < 12; frameIndex++ {
			sim.RenderFrame(img, frameIndex, workers)
			dig.Process(frameIndex, img)
		}
		digests = append(digests, dig.String())
	}

	test.Equate(t, digests[1], digests[0])
	test.Equate(t, digests[2], digests[0])
}

// alpha channel is always opaque
func TestRenderOpaque(t *testing.T) {
	const w = 16
	const h = 16

	his, err := frames.NewHistory(w, h)
	test.ExpectedSuccess(t, err)

	// nothing captured: the render is all black but still opaque
	sim, err := NewSimulator(NewConfig(), his)
	test.ExpectedSuccess(t, err)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	sim.RenderFrame(img, 0, 2)

	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			t.Fatalf("expected black pixels from an empty history")
		}
		if img.Pix[i+3] != 255 {
			t.Fatalf("expected opaque alpha")
		}
	}
}
