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

// Package stdiochan implements the serial.Channel interface over the
// standard file descriptors. It's as simple as simple can be: the host is
// whatever is on the other end of stdin/stdout - an interactive user, a
// pipe or a pseudo-terminal created by a test harness.
package stdiochan

import (
	"os"

	"github.com/jetsetilly/rome64/logger"
	"golang.org/x/term"
)

// StdioChan is the default serial channel. It keeps the terminal in
// whatever mode it started, probably cooked mode, which is fine for a
// line-oriented protocol.
type StdioChan struct {
	input  *os.File
	output *os.File
}

// NewStdioChan is the preferred method of initialisation for the StdioChan
// type.
func NewStdioChan() *StdioChan {
	ch := &StdioChan{
		input:  os.Stdin,
		output: os.Stdout,
	}

	if term.IsTerminal(int(ch.input.Fd())) {
		logger.Log("serial", "channel is an interactive terminal")
	}

	return ch
}

// Read implements the serial.Channel interface.
func (ch *StdioChan) Read(p []byte) (int, error) {
	return ch.input.Read(p)
}

// Write implements the serial.Channel interface.
func (ch *StdioChan) Write(p []byte) (int, error) {
	return ch.output.Write(p)
}

// CleanUp implements the serial.Channel interface.
func (ch *StdioChan) CleanUp() {
}
