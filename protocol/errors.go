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

package protocol

// Error patterns for the three protocol error classes. All are curated
// errors; the leading word of each pattern is the code token that appears
// on the wire after the '!' prefix.
//
// Note that a failed self-test is not in this list. Self-test failure is an
// expected, reportable outcome and is framed as a normal response.
const (
	// BadCommand is an unrecognised command character.
	BadCommand = "CMD unrecognised command %q"

	// BadArgument is a malformed fixed-width hex field. the placeholder
	// names the logical field (address or size) that failed to parse.
	BadArgument = "ARG bad %s field"

	// BadArgumentData is a malformed write data byte. the address reported
	// is the write stream's counter, which has already advanced past the
	// slot being decoded when the fault is noticed.
	BadArgumentData = "ARG bad data field at %04X"

	// BadSyntax is an unexpected separator or terminator where a specific
	// character was required. the placeholders are the offending byte and
	// the command family that detected it.
	BadSyntax = "SYN unexpected byte %q in %c command"
)
