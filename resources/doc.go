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

// Package resources contains functions to prepare paths for CRTBeam
// resources, which currently means the preferences file.
//
// If a directory named ".crtbeam" exists in the current working directory
// then the program runs in portable mode and all resources live under that
// directory. Otherwise resources live in the user's configuration directory
// as reported by the operating system.
package resources
