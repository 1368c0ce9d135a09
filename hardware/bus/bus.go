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

package bus

// Direction describes which way the data bus is facing, from the point of
// view of the microcontroller.
type Direction int

// List of valid Direction values.
const (
	Driving Direction = iota
	Sensing
)

func (dir Direction) String() string {
	switch dir {
	case Driving:
		return "driving"
	case Sensing:
		return "sensing"
	}
	panic("unknown data bus direction")
}

// Bus defines the operations available on the address/data/control lines.
// Implementations bind either to real hardware registers or to a simulation
// of the chip bus (see the simbus package).
//
// None of these functions return errors. They are unconditional hardware
// operations and all correctness preconditions - most importantly the data
// bus direction and the ownership of the control lines - are the
// responsibility of the Controller.
type Bus interface {
	// DriveAddress presents addr to the latched address path and issues the
	// strobe that causes the latch chain to capture it. the function is
	// synchronous: on return the address is held and any following data bus
	// access is valid for that address.
	DriveAddress(addr uint16)

	// WriteData drives value onto the data lines and pulses the write
	// strobe. the data bus must be in the Driving direction.
	WriteData(value uint8)

	// ReadData pulses the read strobe and senses the data lines. the data
	// bus must be in the Sensing direction.
	ReadData() uint8

	// SetDataDirection reconfigures the data lines to drive or to sense.
	SetDataDirection(dir Direction)

	// SetBusOwnership asserts (true) or releases (false) the bus-ownership
	// control signal. while released, the external interface owns the
	// address/data/control lines.
	SetBusOwnership(owned bool)

	// SetStrobesIdle puts the read and write request lines into their
	// inactive resting level (asserted high, meaning "not performing this
	// operation").
	SetStrobesIdle()

	// ReleaseStrobes stops driving the read and write request lines
	// altogether, leaving them floating/pulled for the external interface
	// to operate.
	ReleaseStrobes()

	// SetAddressEnable asserts or releases the address-enable line that
	// connects the latch chain's output to the address bus.
	SetAddressEnable(enabled bool)
}
