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

// Package digest fingerprints sequences of rendered frames. Each processed
// frame folds the previous digest value into the new one, so a single digest
// string identifies an entire rendering run. Two runs produce the same
// digest if and only if every frame of both runs is identical, byte for
// byte.
//
// The package is used by tests to assert that rendering is deterministic
// regardless of how the work is parallelised. It is a hash for comparison
// purposes; do not use it for any cryptographic task.
package digest
