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

package firmware_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/rome64/firmware"
	"github.com/jetsetilly/rome64/hardware"
	"github.com/jetsetilly/rome64/hardware/simbus"
	"github.com/jetsetilly/rome64/test"
)

// scriptChannel is a serial channel fed from a fixed script, with responses
// accumulating in the embedded CompareWriter.
type scriptChannel struct {
	test.CompareWriter
	input io.Reader
}

func newScriptChannel(script string) *scriptChannel {
	return &scriptChannel{
		input: strings.NewReader(script),
	}
}

func (ch *scriptChannel) Read(p []byte) (int, error) {
	return ch.input.Read(p)
}

func (ch *scriptChannel) CleanUp() {
}

func TestSession(t *testing.T) {
	ch := newScriptChannel("V\nW0010CAFE\nR001002\nE\nR001002\n")
	fw := firmware.NewFirmware(ch, hardware.NewDevice(simbus.NewSimBus()))

	// the channel running dry stands in for the channel closing. that is a
	// clean end of session
	err := fw.Run()
	if err != nil {
		t.Fatalf("session ended with: %v", err)
	}

	// the boot banner arrives before any response. the final read works even
	// though the bus was handed over in between
	test.ExpectedSuccess(t, ch.Compare(
		"# Rome64 ROME2.0 started\nVROME2.0\nW00100012\nRCAFE\nEOK\nRCAFE\n"))
}

func TestEmptySession(t *testing.T) {
	ch := newScriptChannel("")
	fw := firmware.NewFirmware(ch, hardware.NewDevice(simbus.NewSimBus()))

	test.ExpectedSuccess(t, fw.Run() == nil)
	test.ExpectedSuccess(t, ch.Compare("# Rome64 ROME2.0 started\n"))
}
