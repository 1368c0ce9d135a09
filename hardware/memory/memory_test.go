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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/rome64/hardware/bus"
	"github.com/jetsetilly/rome64/hardware/memory"
	"github.com/jetsetilly/rome64/hardware/simbus"
	"github.com/jetsetilly/rome64/test"
)

func newMemory() (*memory.Memory, *simbus.SimBus) {
	sb := simbus.NewSimBus()
	return memory.NewMemory(bus.NewController(sb)), sb
}

func TestWriteReadRoundTrip(t *testing.T) {
	mem, _ := newMemory()

	from, to := mem.WriteRange(0x0100, []uint8{0xde, 0xad, 0xc0, 0xde})
	test.Equate(t, from, 0x0100)
	test.Equate(t, to, 0x0104)

	var got []uint8
	mem.ReadRange(0x0100, 4, func(v uint8) {
		got = append(got, v)
	})

	test.Equate(t, len(got), 4)
	for i, v := range []uint8{0xde, 0xad, 0xc0, 0xde} {
		test.Equate(t, got[i], v)
	}
}

func TestReadRangeCount(t *testing.T) {
	mem, _ := newMemory()

	// zero count is valid and calls the byte function not at all
	n := 0
	mem.ReadRange(0x0000, 0, func(_ uint8) { n++ })
	test.Equate(t, n, 0)

	// the maximum request is 255 bytes
	mem.ReadRange(0x0000, 255, func(_ uint8) { n++ })
	test.Equate(t, n, 255)
}

func TestReadRangeOrder(t *testing.T) {
	mem, sb := newMemory()

	for i := 0; i < 8; i++ {
		sb.Poke(uint16(0x2000+i), uint8(i))
	}

	var exp uint8
	mem.ReadRange(0x2000, 8, func(v uint8) {
		test.Equate(t, v, exp)
		exp++
	})
}

func TestWriteStreamStaging(t *testing.T) {
	mem, sb := newMemory()

	ws := mem.WriteStream(0x0500)
	from, to := ws.Range()
	test.Equate(t, from, 0x0500)
	test.Equate(t, to, 0x0500)

	ws.Put(0xaa)

	// staging advances the counter before the value is known
	ws.Stage()
	from, to = ws.Range()
	test.Equate(t, from, 0x0500)
	test.Equate(t, to, 0x0502)
	test.Equate(t, sb.Latch(), 0x0501)

	// only the committed byte has reached the store
	test.Equate(t, sb.Peek(0x0500), 0xaa)
	test.Equate(t, sb.Peek(0x0501), 0x00)

	ws.Commit(0xbb)
	test.Equate(t, sb.Peek(0x0501), 0xbb)
}

func TestWriteRangeEmpty(t *testing.T) {
	mem, _ := newMemory()

	from, to := mem.WriteRange(0x0000, nil)
	test.Equate(t, from, 0x0000)
	test.Equate(t, to, 0x0000)
}
