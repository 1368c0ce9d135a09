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

// Package protocol implements the line-oriented command protocol spoken
// over the serial channel. Every message in either direction is ASCII text
// ending with a single line-feed byte. Carriage returns are not part of the
// protocol.
//
// One command per line, identified by its first character:
//
//	V              version request. response: V followed by the
//	               implementation version string
//	P<bytes>       ping. response: p followed by the exact bytes received
//	T              memory self-test. response: TOK or TFAIL, the latter
//	               preceded by an informational line carrying the bit-error
//	               mask
//	E              hand the bus to the external interface. response: EOK
//	W<addr><data>  write. addr is 4 hex digits; data is a run of 2-hex-digit
//	               byte groups, optionally separated by single spaces.
//	               response: W followed by the start and end-exclusive
//	               addresses of the range written, 4 hex digits each
//	R<addr><n>     read. addr is 4 hex digits, n is 2 hex digits. response:
//	               R followed by n byte values, 2 hex digits each, in
//	               address order. n may be zero, giving a bare R response
//
// Decoding is strictly left-to-right and fields are fixed width. A
// malformed field aborts the command: the remainder of the line is
// discarded, up to and including the terminator, and exactly one error line
// is emitted. Error lines start with '!' and a code token classifying the
// fault - see the pattern constants in this package.
//
// The write command is streamed. Each data byte goes to the bus as soon as
// its second hex digit has been decoded, so a malformed byte group midway
// through the line leaves the earlier bytes committed.
//
// Informational lines, prefixed '#', can appear before or between any of
// the above. Hosts must tolerate and ignore them.
package protocol
