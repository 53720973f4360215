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
)

// tubePos reinterprets the pixel coordinate as a position along the scan
// axis, in the range [0,1]. a tube position of zero is swept by the beam at
// the very start of the cycle
func (sim *Simulator) tubePos(x float64, y float64) float64 {
	switch sim.cfg.ScanDirection {
	case ScanBottomToTop:
		return 1 - y
	case ScanLeftToRight:
		return x
	case ScanRightToLeft:
		return 1 - x
	}
	return y
}

// overlap is the length of the intersection of the half-open intervals
// [aStart,aEnd) and [bStart,bEnd), clamped to zero when they are disjoint
func overlap(aStart float64, aEnd float64, bStart float64, bEnd float64) float64 {
	o := math.Min(aEnd, bEnd) - math.Max(aStart, bStart)
	if o < 0 {
		return 0
	}
	return o
}

// composite performs the rolling-scan exposure integration for one pixel.
//
// The three most recent source frames each emit light at this pixel for a
// duration proportional to their linear brightness, staggered by one cycle
// length per frame of age. The beam's capture window is one sub-frame wide
// and positioned by the raster position. The output channel is the total
// emission falling inside the window.
//
// All arithmetic is in linear light. The three samples are decoded on entry
// and the result re-encoded on exit.
func (sim *Simulator) composite(x float64, y float64, rasterPos float64, cycle int) colour.RGB {
	fph := sim.fph

	// brightness-as-duration for each history slot. the framesPerHz factor
	// converts a full brightness pixel into a full cycle of emission
	gain := fph * sim.cfg.GainVsBlur
	prev2 := sim.curve.DecodeRGB(sim.sample(x, y, cycle-2, cycle)).Scale(gain)
	prev1 := sim.curve.DecodeRGB(sim.sample(x, y, cycle-1, cycle)).Scale(gain)
	curr := sim.curve.DecodeRGB(sim.sample(x, y, cycle, cycle)).Scale(gain)

	// the beam's position in sub-frame units at this screen location
	tubeFrame := sim.tubePos(x, y) * fph

	// the beam capture window
	fStart := rasterPos * fph
	fEnd := fStart + 1

	lin := colour.RGB{
		R: sim.channel(prev2.R, prev1.R, curr.R, tubeFrame, fStart, fEnd),
		G: sim.channel(prev2.G, prev1.G, curr.G, tubeFrame, fStart, fEnd),
		B: sim.channel(prev2.B, prev1.B, curr.B, tubeFrame, fStart, fEnd),
	}

	return sim.curve.EncodeRGB(lin)
}

// channel integrates a single colour channel. the three brightness arguments
// are the emission durations of the three history slots, oldest first
func (sim *Simulator) channel(prev2 float64, prev1 float64, curr float64, tubeFrame float64, fStart float64, fEnd float64) float64 {
	if prev2 <= 0 && prev1 <= 0 && curr <= 0 {
		return 0
	}

	// emission intervals are anchored one cycle length apart. the
	// previous-previous frame began emitting a full cycle before the
	// previous frame, and the current frame a full cycle after it
	e := overlap(tubeFrame-sim.fph, tubeFrame-sim.fph+prev2, fStart, fEnd)
	e += overlap(tubeFrame, tubeFrame+prev1, fStart, fEnd)
	e += overlap(tubeFrame+sim.fph, tubeFrame+sim.fph+curr, fStart, fEnd)

	return e
}
