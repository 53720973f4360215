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

import "github.com/jetsetilly/crtbeam/colour"

// uniformSource pretends that every cycle is retained and that every pixel
// of every frame is the same encoded colour. useful for testing the
// compositor arithmetic in isolation from real frame storage.
type uniformSource struct {
	col colour.RGB
}

func (src uniformSource) Bilinear(cycle int, x float64, y float64) (colour.RGB, bool) {
	return src.col, true
}

// recordingSource notes the most recently requested coordinate.
type recordingSource struct {
	col colour.RGB
	x   float64
	y   float64
}

func (src *recordingSource) Bilinear(cycle int, x float64, y float64) (colour.RGB, bool) {
	src.x = x
	src.y = y
	return src.col, true
}
