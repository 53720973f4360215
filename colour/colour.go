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

import "math"

// DefaultGamma is the exponent of the standard sRGB transfer function.
const DefaultGamma = 2.4

// breakpoints and coefficients of the piecewise sRGB curve. the linear
// segment constants are fixed regardless of the gamma exponent. the two
// segments meet exactly when the exponent is DefaultGamma; other exponents
// introduce a small discontinuity at the breakpoint, as they do in the
// standard shader formulation of this curve
const (
	encodedThreshold = 0.04045
	linearThreshold  = 0.0031308
	linearSlope      = 12.92
	powerScale       = 1.055
	powerOffset      = 0.055
)

// Curve describes a gamma transfer curve. The zero value is not useful; use
// NewCurve.
type Curve struct {
	gamma    float64
	invGamma float64
}

// NewCurve prepares a transfer curve with the specified gamma exponent. A
// gamma value less than or equal to zero is replaced with DefaultGamma.
func NewCurve(gamma float64) Curve {
	if gamma <= 0 {
		gamma = DefaultGamma
	}
	return Curve{
		gamma:    gamma,
		invGamma: 1 / gamma,
	}
}

// Gamma returns the exponent the curve was prepared with.
func (crv Curve) Gamma() float64 {
	return crv.gamma
}

// Decode converts an encoded value to linear light.
func (crv Curve) Decode(c float64) float64 {
	if c <= encodedThreshold {
		return c / linearSlope
	}
	return math.Pow((c+powerOffset)/powerScale, crv.gamma)
}

// Encode converts a linear light value to the encoded space.
func (crv Curve) Encode(c float64) float64 {
	if c <= linearThreshold {
		return c * linearSlope
	}
	return powerScale*math.Pow(c, crv.invGamma) - powerOffset
}

// DecodeRGB applies Decode to each channel independently.
func (crv Curve) DecodeRGB(c RGB) RGB {
	return RGB{
		R: crv.Decode(c.R),
		G: crv.Decode(c.G),
		B: crv.Decode(c.B),
	}
}

// EncodeRGB applies Encode to each channel independently.
func (crv Curve) EncodeRGB(c RGB) RGB {
	return RGB{
		R: crv.Encode(c.R),
		G: crv.Encode(c.G),
		B: crv.Encode(c.B),
	}
}
