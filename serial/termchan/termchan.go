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

// Package termchan implements the serial.Channel interface over a real
// tty/serial device, using "github.com/pkg/term". The port runs in raw mode
// at a fixed rate - the protocol does its own framing with line-feed bytes
// and any translation by the tty layer would corrupt it.
package termchan

import (
	"fmt"

	"github.com/jetsetilly/rome64/logger"
	"github.com/pkg/term"
)

// TermChan is a serial channel bound to a tty device.
type TermChan struct {
	name string
	port *term.Term
}

// NewTermChan opens the named tty device at the given bit rate.
func NewTermChan(name string, bitRate int) (*TermChan, error) {
	p, err := term.Open(name, term.Speed(bitRate), term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("termchan: %w", err)
	}

	logger.Logf("serial", "%s opened at %d bps", name, bitRate)

	return &TermChan{
		name: name,
		port: p,
	}, nil
}

// Read implements the serial.Channel interface.
func (ch *TermChan) Read(p []byte) (int, error) {
	return ch.port.Read(p)
}

// Write implements the serial.Channel interface.
func (ch *TermChan) Write(p []byte) (int, error) {
	return ch.port.Write(p)
}

// CleanUp implements the serial.Channel interface.
func (ch *TermChan) CleanUp() {
	_ = ch.port.Restore()
	_ = ch.port.Close()
	logger.Logf("serial", "%s closed", ch.name)
}
