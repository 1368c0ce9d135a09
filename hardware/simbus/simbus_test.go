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

package simbus_test

import (
	"testing"

	"github.com/jetsetilly/rome64/hardware/bus"
	"github.com/jetsetilly/rome64/hardware/simbus"
	"github.com/jetsetilly/rome64/test"
)

// acquire puts the bus in a state where transfers are legal.
func acquire(sb *simbus.SimBus, dir bus.Direction) {
	sb.SetBusOwnership(true)
	sb.SetAddressEnable(true)
	sb.SetStrobesIdle()
	sb.SetDataDirection(dir)
}

func TestLatchHoldsAddress(t *testing.T) {
	sb := simbus.NewSimBus()
	acquire(sb, bus.Driving)

	sb.DriveAddress(0xbeef)
	test.Equate(t, sb.Latch(), 0xbeef)

	// the latch holds until the next strobe, however many transfers happen
	sb.WriteData(0x01)
	sb.WriteData(0x02)
	test.Equate(t, sb.Latch(), 0xbeef)
	test.Equate(t, sb.Peek(0xbeef), 0x02)
}

func TestTransferRoundTrip(t *testing.T) {
	sb := simbus.NewSimBus()
	acquire(sb, bus.Driving)

	sb.DriveAddress(0x1000)
	sb.WriteData(0xca)

	sb.SetDataDirection(bus.Sensing)
	sb.DriveAddress(0x1000)
	test.Equate(t, sb.ReadData(), 0xca)
}

func TestStuckMasks(t *testing.T) {
	sb := simbus.NewSimBus()
	acquire(sb, bus.Driving)

	sb.StuckLow = 0x01
	sb.StuckHigh = 0x80

	sb.DriveAddress(0x0000)
	sb.WriteData(0x0f)
	test.Equate(t, sb.Peek(0x0000), 0x8e)

	// the fault applies on the read path too, even for cells poked directly
	sb.Poke(0x0001, 0x7f)
	sb.SetDataDirection(bus.Sensing)
	sb.DriveAddress(0x0001)
	test.Equate(t, sb.ReadData(), 0xfe)
}

func expectPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Errorf("expected panic from bus misuse")
		}
	}()
	f()
}

// misusing the data or address lines is bus contention. the simulation
// panics rather than modelling the smoke.
func TestContentionPanics(t *testing.T) {
	sb := simbus.NewSimBus()

	expectPanic(t, func() { sb.DriveAddress(0x0000) })
	expectPanic(t, func() { sb.WriteData(0x00) })
	expectPanic(t, func() { _ = sb.ReadData() })

	acquire(sb, bus.Sensing)
	expectPanic(t, func() { sb.WriteData(0x00) })

	sb.SetDataDirection(bus.Driving)
	expectPanic(t, func() { _ = sb.ReadData() })

	sb.SetAddressEnable(false)
	expectPanic(t, func() { sb.DriveAddress(0x0000) })
}
