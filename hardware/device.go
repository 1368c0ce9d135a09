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

// Package hardware is the container for the device side of the emulator:
// the bus, the bus mode controller and the memory operations that drive the
// 64K address space through it. The protocol package operates on a Device
// and nothing else.
package hardware

import (
	"github.com/jetsetilly/rome64/hardware/bus"
	"github.com/jetsetilly/rome64/hardware/memory"
)

// Device is the main container for the emulated device. The Bus field is
// the bus implementation the device was created with - for the common case
// of a simulated bus it will be a *simbus.SimBus.
type Device struct {
	Bus  bus.Bus
	Ctrl *bus.Controller
	Mem  *memory.Memory
}

// NewDevice creates a new device around the supplied bus implementation.
func NewDevice(b bus.Bus) *Device {
	dev := &Device{Bus: b}
	dev.Ctrl = bus.NewController(b)
	dev.Mem = memory.NewMemory(dev.Ctrl)
	return dev
}

// ReadRange reads count bytes from the given address. see the memory
// package for details.
func (dev *Device) ReadRange(start uint16, count uint8, each func(value uint8)) {
	dev.Mem.ReadRange(start, count, each)
}

// WriteStream begins a streamed write at the given address. see the memory
// package for details.
func (dev *Device) WriteStream(start uint16) *memory.WriteStream {
	return dev.Mem.WriteStream(start)
}

// SelfTest exercises every address in the 64K space. see the memory package
// for details.
func (dev *Device) SelfTest() memory.TestResult {
	return dev.Mem.SelfTest()
}

// ExternalControl hands the bus over to the external interface. a
// subsequent memory operation will reclaim it.
func (dev *Device) ExternalControl() {
	dev.Ctrl.EnsureMode(bus.ExternalControl)
}
