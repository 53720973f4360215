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

// Package colour converts colour values between the encoded (gamma
// corrected) space used by frame buffers and the linear-light space required
// for exposure arithmetic.
//
// The transfer function is the standard sRGB piecewise curve: a linear
// segment below a small threshold and a scaled/offset power curve above it.
// The exponent of the power curve is adjustable through the Curve type. The
// default exponent of 2.4 gives the standard sRGB curve.
//
// Encode and Decode are exact inverses of one another. The beam simulation
// relies on this: samples are decoded to linear light, integrated, and the
// result re-encoded without banding.
package colour
