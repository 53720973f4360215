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

// Package prefs provides typed preference values and disk persistence for
// them.
//
// The Bool, Int, Float and String types store their values atomically so
// they may be read while another goroutine is updating them. Each type
// accepts a pre-set hook, used to validate or reject a new value before it
// is stored, and a post-set hook for reacting to a change.
//
// The Disk type gathers preference values under string keys and saves or
// loads them as a plain text file of "key :: value" lines. Unrecognised
// keys in the file are ignored, allowing prefs files to be shared between
// program versions.
package prefs
