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

// Package firmware is the top of the device: the session-less command loop
// that drives the protocol decoder against the serial channel. Everything
// is synchronous and run-to-completion - one line is pulled from the
// channel, processed entirely, and its response emitted before the next
// byte is read. There are no background tasks and nothing is cancellable
// mid-flight.
package firmware

import (
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/rome64/hardware"
	"github.com/jetsetilly/rome64/logger"
	"github.com/jetsetilly/rome64/protocol"
	"github.com/jetsetilly/rome64/serial"
	"github.com/jetsetilly/rome64/version"
)

// Firmware ties the serial channel to the device hardware.
type Firmware struct {
	channel serial.Channel
	dev     *hardware.Device
	dec     *protocol.Decoder
	enc     *protocol.Encoder
}

// NewFirmware is the preferred method of initialisation for the Firmware
// type.
func NewFirmware(channel serial.Channel, dev *hardware.Device) *Firmware {
	fw := &Firmware{
		channel: channel,
		dev:     dev,
	}
	fw.enc = protocol.NewEncoder(channel)
	fw.dec = protocol.NewDecoder(channel, dev, fw.enc)
	return fw
}

// InfoWriter returns a writer onto the channel that frames everything as
// informational lines. suitable as the central logger's echo writer.
func (fw *Firmware) InfoWriter() io.Writer {
	return protocol.NewInfoWriter(fw.channel)
}

// Run executes the command loop until the serial channel is closed. one
// informational "started" line is emitted before the first command is
// accepted.
//
// a clean close of the channel returns nil. anything else wrong with the
// channel is an unrecoverable input fault and is returned as an error -
// note that protocol errors are never fatal and are handled entirely
// inside the decoder.
func (fw *Firmware) Run() error {
	fw.enc.Info(fmt.Sprintf("%s %s started", version.ApplicationName, version.Identity))
	logger.Log("firmware", "command loop running")

	for {
		if err := fw.dec.Step(); err != nil {
			if errors.Is(err, io.EOF) {
				logger.Log("firmware", "serial channel closed")
				return nil
			}
			return fmt.Errorf("firmware: %w", err)
		}
	}
}
