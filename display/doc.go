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

// Package display groups the user-facing simulation settings into a single
// Preferences type backed by the prefs system. Every tunable of the beam
// simulation has a corresponding prefs entry, saved to and loaded from the
// CRTBeam preferences file.
//
// The Config() function converts the current preference values into a
// beam.Config ready for simulator construction.
package display
