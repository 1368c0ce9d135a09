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

// Package simbus simulates the chip bus: the latched address path, the
// bidirectional data lines and the 64K store behind them. It is the bus the
// firmware normally runs against and it is deliberately strict - using the
// data lines against the configured direction, or without bus ownership,
// panics. On real hardware that kind of misuse is bus contention and can
// damage the drivers, so the simulation treats it as a programming error
// rather than something to be reported politely.
//
// Data line faults can be injected with the StuckLow and StuckHigh masks,
// which force the corresponding data bits on every transfer. The self-test
// routine in the memory package is expected to find them.
package simbus

import (
	"github.com/jetsetilly/rome64/hardware/bus"
)

// MemorySize is the number of addressable cells behind the bus. the address
// path is 16 bits wide and the firmware supports no other size.
const MemorySize = 0x10000

// SimBus implements the bus.Bus interface against a simulated latch chain
// and RAM array.
type SimBus struct {
	ram [MemorySize]uint8

	// the address currently held by the latch chain. updated only by the
	// strobe in DriveAddress()
	latch uint16

	// line states, as configured by the bus controller
	direction     bus.Direction
	owned         bool
	strobesIdle   bool
	addressEnable bool

	// StuckLow and StuckHigh are data line fault masks. a bit set in
	// StuckLow forces that data line low on every transfer; StuckHigh
	// forces it high. both zero on a healthy bus.
	StuckLow  uint8
	StuckHigh uint8

	// Reconfigurations counts every control/direction line operation. tests
	// use it to observe that a redundant mode request touches no lines.
	Reconfigurations int
}

// NewSimBus is the preferred method of initialisation for the SimBus type.
// the bus starts with no party owning it, mirroring the electrical state
// before the firmware's first mode transition.
func NewSimBus() *SimBus {
	return &SimBus{
		direction: bus.Sensing,
	}
}

// DriveAddress implements the bus.Bus interface.
func (sb *SimBus) DriveAddress(addr uint16) {
	if !sb.owned {
		panic("address driven without bus ownership")
	}
	if !sb.addressEnable {
		panic("address driven while address-enable line is released")
	}
	sb.latch = addr
}

// WriteData implements the bus.Bus interface.
func (sb *SimBus) WriteData(value uint8) {
	if !sb.owned {
		panic("data bus written without bus ownership")
	}
	if sb.direction != bus.Driving {
		panic("data bus written while sensing")
	}
	sb.ram[sb.latch] = (value &^ sb.StuckLow) | sb.StuckHigh
}

// ReadData implements the bus.Bus interface.
func (sb *SimBus) ReadData() uint8 {
	if !sb.owned {
		panic("data bus read without bus ownership")
	}
	if sb.direction != bus.Sensing {
		panic("data bus read while driving")
	}
	return (sb.ram[sb.latch] &^ sb.StuckLow) | sb.StuckHigh
}

// SetDataDirection implements the bus.Bus interface.
func (sb *SimBus) SetDataDirection(dir bus.Direction) {
	sb.Reconfigurations++
	sb.direction = dir
}

// SetBusOwnership implements the bus.Bus interface.
func (sb *SimBus) SetBusOwnership(owned bool) {
	sb.Reconfigurations++
	sb.owned = owned
}

// SetStrobesIdle implements the bus.Bus interface.
func (sb *SimBus) SetStrobesIdle() {
	sb.Reconfigurations++
	sb.strobesIdle = true
}

// ReleaseStrobes implements the bus.Bus interface.
func (sb *SimBus) ReleaseStrobes() {
	sb.Reconfigurations++
	sb.strobesIdle = false
}

// SetAddressEnable implements the bus.Bus interface.
func (sb *SimBus) SetAddressEnable(enabled bool) {
	sb.Reconfigurations++
	sb.addressEnable = enabled
}

// Latch returns the address currently held by the latch chain.
func (sb *SimBus) Latch() uint16 {
	return sb.latch
}

// Owned returns true if the microcontroller's ownership signal is asserted.
func (sb *SimBus) Owned() bool {
	return sb.owned
}

// AddressEnabled returns the state of the address-enable line.
func (sb *SimBus) AddressEnabled() bool {
	return sb.addressEnable
}

// StrobesIdle returns true while the read/write request lines are being
// driven at their inactive resting level. false means they have been
// released for the external interface to operate.
func (sb *SimBus) StrobesIdle() bool {
	return sb.strobesIdle
}

// Direction returns the configured data bus direction.
func (sb *SimBus) Direction() bus.Direction {
	return sb.direction
}

// Peek returns the content of the simulated cell without going through the
// bus lines. for test setup and inspection only.
func (sb *SimBus) Peek(addr uint16) uint8 {
	return sb.ram[addr]
}

// Poke sets the content of the simulated cell without going through the bus
// lines. for test setup only.
func (sb *SimBus) Poke(addr uint16, value uint8) {
	sb.ram[addr] = value
}
