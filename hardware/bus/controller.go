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

import (
	"github.com/jetsetilly/rome64/logger"
)

// Controller tracks which party is driving the bus and is the sole mutator
// of the bus mode. memory operations must only execute while the mode is
// Writing or Reading; entering ExternalControl relinquishes our electrical
// ownership of the bus.
//
// there is a single thread of control in the firmware so the Controller
// needs no locking. correctness depends instead on the ordering of the line
// operations inside EnsureMode().
type Controller struct {
	bus  Bus
	mode Mode
}

// NewController is the preferred method of initialisation for the Controller
// type. the initial mode is Uninitialized, meaning the first EnsureMode()
// call always performs a full reconfiguration.
func NewController(b Bus) *Controller {
	return &Controller{
		bus:  b,
		mode: Uninitialized,
	}
}

// Mode returns the currently active bus mode.
func (ct *Controller) Mode() Mode {
	return ct.mode
}

// Bus returns the underlying bus. callers may only use the signaling
// operations (DriveAddress, ReadData, WriteData) and only while the mode
// they require is active.
func (ct *Controller) Bus() Bus {
	return ct.bus
}

// EnsureMode transitions the bus into the target mode. it is a guaranteed
// no-op when the target mode is already active.
//
// into Writing or Reading: ownership of the control and address-enable lines
// is asserted first, the read/write strobes are put to their inactive
// resting level, and only then is the data bus direction configured.
//
// into ExternalControl: the data bus is put into sensing mode and the
// strobe and address-enable lines are released before - and only before -
// ownership is handed to the external interface. releasing ownership while
// our own drivers are still active would put two parties on the same lines.
func (ct *Controller) EnsureMode(target Mode) {
	if ct.mode == target {
		return
	}

	switch target {
	case Writing:
		ct.acquire()
		ct.bus.SetDataDirection(Driving)

	case Reading:
		ct.acquire()
		ct.bus.SetDataDirection(Sensing)

	case ExternalControl:
		ct.bus.SetDataDirection(Sensing)
		ct.bus.ReleaseStrobes()
		ct.bus.SetAddressEnable(false)
		ct.bus.SetBusOwnership(false)

	case Uninitialized:
		panic("bus mode cannot return to uninitialized")
	}

	logger.Logf("bus", "mode: %s -> %s", ct.mode, target)
	ct.mode = target
}

// acquire reclaims the bus from whoever has it. the ownership signal goes
// first so that the external interface's drivers are off the lines before
// we enable our own.
func (ct *Controller) acquire() {
	ct.bus.SetBusOwnership(true)
	ct.bus.SetAddressEnable(true)
	ct.bus.SetStrobesIdle()
}
