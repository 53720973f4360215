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

// Package beam simulates the rolling scan of a CRT electron beam on a high
// refresh rate display, reducing perceived motion blur on sample-and-hold
// panels (LCD/OLED) by emulating phosphor decay.
//
// Each display refresh is a sub-frame of a simulated CRT refresh cycle. The
// cycle is framesPerHz sub-frames long: a 240Hz display simulating a 60Hz
// CRT uses framesPerHz of 4. For every output pixel the simulator models the
// light emitted by the three most recent source frames as temporal emission
// intervals, with the length of each interval proportional to the pixel's
// linear brightness. The beam "sees" only the light falling within its
// capture window, a fixed-length interval swept across the cycle as the
// raster position advances. Brighter pixels emit for longer and so smear
// further; this is the variable persistence (variable MPRT) property of real
// phosphor.
//
// The interval overlap is computed in closed form rather than by
// accumulating sub-samples, so the integration is numerically exact and the
// output free of banding.
//
// The per-pixel function is pure: its result depends only on the pixel
// coordinate, the frame index and the read-only frame history. The host may
// therefore evaluate pixels in any order and with any degree of parallelism.
// RenderFrame() provides a row-parallel evaluation for hosts that want one.
package beam
