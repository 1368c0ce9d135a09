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

// Package bus defines the capability interface onto the physical
// address/data/control lines of the emulated memory chip, and the controller
// that arbitrates who is driving them.
//
// The Bus interface is deliberately small. The address path is latched: a
// call to DriveAddress() presents a value to the latch chain and strobes it,
// and the latch holds that value until the next strobe. The data path is
// bidirectional and its direction is a precondition established by the
// Controller, never decided by the caller of ReadData() or WriteData().
//
// The Controller is the only type allowed to change the bus mode. Mode
// transitions have real electrical consequences if misordered - handing
// ownership of the bus to the external interface before our own drivers are
// disabled would mean two parties driving the same lines - so all
// reconfiguration is funnelled through the EnsureMode() function, which
// performs the line operations in a safe order.
package bus
