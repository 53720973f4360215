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

package colour

// RGB is a colour with floating point channels, nominally in the range
// [0,1]. Whether the values are encoded or linear depends on context; the
// type itself does not distinguish. All blending in the beam package happens
// on decoded (linear) values only.
type RGB struct {
	R float64
	G float64
	B float64
}

// Black is the zero RGB value. It is the same in both the encoded and linear
// spaces.
var Black = RGB{}

// Scale multiplies each channel by v.
func (c RGB) Scale(v float64) RGB {
	return RGB{
		R: c.R * v,
		G: c.G * v,
		B: c.B * v,
	}
}

// RGBA8 quantises the colour to 8bit channels, clamping each channel to the
// [0,1] range first. The returned alpha is always opaque.
func (c RGB) RGBA8() (r uint8, g uint8, b uint8, a uint8) {
	return quantise(c.R), quantise(c.G), quantise(c.B), 255
}

func quantise(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
