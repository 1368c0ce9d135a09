// This file is part of Rome64.
//
// Rome64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rome64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rome64.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by
// the Errorf() function with a specific pattern. The protocol package leans
// on this to classify decode failures without string comparison:
//
//	err := curated.Errorf(protocol.BadArgument, "size")
//
//	if curated.Is(err, protocol.BadArgument) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain, where chains are built by using a curated error as a
// placeholder value in a later Errorf() call.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. The firmware loop uses this to separate protocol
// errors, which are reported to the host and recovered from, from channel
// faults, which are fatal.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts.
package curated
