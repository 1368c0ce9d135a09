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

// Package serial defines the byte-oriented full-duplex channel the firmware
// speaks to the host over. Two implementations are provided: stdiochan runs
// the protocol over the standard file descriptors, termchan over a real
// tty/serial device.
package serial

import (
	"io"
)

// DefaultBitRate is the rate the original device's serial port runs at.
const DefaultBitRate = 2000000

// Channel is a byte-oriented full-duplex connection to the host. Read
// blocks indefinitely until at least one byte arrives or the channel is
// closed; there are no timeouts in the protocol.
type Channel interface {
	io.Reader
	io.Writer

	// CleanUp any resources created when the channel was opened.
	CleanUp()
}
