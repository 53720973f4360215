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

// Package frames maintains the history of captured source-video frames
// required by the beam simulation.
//
// The History type retains the most recent frames in a small ring, keyed by
// beam-cycle number. The host captures one source frame per beam cycle; the
// simulation reads the retained frames through bilinear sampling at
// normalised coordinates. Capturing and sampling must not overlap in time -
// the host captures between sub-frames and the simulation only ever reads.
//
// Colour values returned by sampling are in the encoded (gamma corrected)
// space of the source frames. Decoding to linear light is the caller's
// responsibility.
package frames
