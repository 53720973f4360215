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

// Package testpattern generates synthetic source video for demonstrating
// the beam simulation: colour bars for judging the variable persistence of
// different brightness levels, a block moving one step per frame for
// judging motion clarity, and a frame counter.
//
// Generated frames are deterministic for a given generator and frame
// number.
package testpattern
