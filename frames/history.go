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

package frames

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/jetsetilly/crtbeam/colour"

	xdraw "golang.org/x/image/draw"
)

// Depth is the number of frames retained by a History. The beam simulation
// integrates over the current frame and the two before it.
const Depth = 3

// History is a ring of the most recently captured source frames, keyed by
// beam-cycle number.
type History struct {
	width  int
	height int

	frames [Depth]*image.RGBA
	cycles [Depth]int
}

// NewHistory is the preferred method of initialisation for the History type.
func NewHistory(width int, height int) (*History, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("frames: invalid history resolution (%dx%d)", width, height)
	}

	his := &History{
		width:  width,
		height: height,
	}

	for i := range his.frames {
		his.frames[i] = image.NewRGBA(image.Rect(0, 0, width, height))
		his.cycles[i] = -1
	}

	return his, nil
}

// Capture stores a copy of src as the frame for the specified beam cycle,
// replacing the oldest frame in the ring. Frames that do not match the
// history resolution are resampled to fit. Cycles are expected to arrive in
// increasing order; a negative cycle is ignored.
func (his *History) Capture(cycle int, src image.Image) {
	if cycle < 0 {
		return
	}

	slot := cycle % Depth
	dst := his.frames[slot]

	b := src.Bounds()
	if b.Dx() == his.width && b.Dy() == his.height {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}

	his.cycles[slot] = cycle
}

// Bilinear samples the frame captured for the specified beam cycle at the
// normalised coordinate, using bilinear interpolation of the four
// surrounding texels. The horizontal axis wraps and the vertical axis
// clamps, matching how the synthetic content scrolls.
//
// The second return value is false if no frame is retained for the cycle, in
// which case the returned colour is black.
func (his *History) Bilinear(cycle int, x float64, y float64) (colour.RGB, bool) {
	if cycle < 0 {
		return colour.Black, false
	}

	slot := cycle % Depth
	if his.cycles[slot] != cycle {
		return colour.Black, false
	}
	pix := his.frames[slot]

	// texel space with the half texel offset so that interpolation pivots on
	// texel centres
	fx := x*float64(his.width) - 0.5
	fy := y*float64(his.height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	xfrac := fx - float64(x0)
	yfrac := fy - float64(y0)

	c00 := his.texel(pix, x0, y0)
	c10 := his.texel(pix, x0+1, y0)
	c01 := his.texel(pix, x0, y0+1)
	c11 := his.texel(pix, x0+1, y0+1)

	top := lerp(c00, c10, xfrac)
	bot := lerp(c01, c11, xfrac)

	return lerp(top, bot, yfrac), true
}

// Size returns the resolution of the retained frames.
func (his *History) Size() (width int, height int) {
	return his.width, his.height
}

func (his *History) texel(pix *image.RGBA, x int, y int) colour.RGB {
	x = ((x % his.width) + his.width) % his.width

	if y < 0 {
		y = 0
	} else if y >= his.height {
		y = his.height - 1
	}

	i := pix.PixOffset(x, y)
	return colour.RGB{
		R: float64(pix.Pix[i]) / 255,
		G: float64(pix.Pix[i+1]) / 255,
		B: float64(pix.Pix[i+2]) / 255,
	}
}

func lerp(a colour.RGB, b colour.RGB, frac float64) colour.RGB {
	return colour.RGB{
		R: a.R + (b.R-a.R)*frac,
		G: a.G + (b.G-a.G)*frac,
		B: a.B + (b.B-a.B)*frac,
	}
}
