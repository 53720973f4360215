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
	"math"

	"github.com/jetsetilly/crtbeam/colour"
	"github.com/jetsetilly/crtbeam/frames"
)

// nudge applied to the scrolled coordinate. without it the interpolation at
// the wrap boundary can land exactly between the first and last columns and
// show a one pixel seam
const seamEpsilon = 0.0001

// sample fetches the encoded colour of the frame captured for the target
// cycle. A target outside the retained history window - in the future of the
// current cycle, or more than two cycles in its past - is black: the
// phosphor there is either not yet lit or has decayed out of history.
//
// When motion simulation is enabled the horizontal coordinate scrolls by
// MotionSpeed/1000 of the frame width per cycle, wrapping at the edges.
func (sim *Simulator) sample(x float64, y float64, target int, current int) colour.RGB {
	if target > current || target < current-(frames.Depth-1) {
		return colour.Black
	}

	if sim.cfg.MotionSim {
		shift := math.Mod(float64(target)*sim.cfg.MotionSpeed/1000, 1)
		x += shift + seamEpsilon
		x -= math.Floor(x)
	}

	col, ok := sim.src.Bilinear(target, x, y)
	if !ok {
		return colour.Black
	}
	return col
}
