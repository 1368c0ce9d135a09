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

// Package memory implements the address-indexed access operations on the
// emulated memory. There is no local copy of the memory image - every byte
// is read or written through the physical bus on demand, which is why all
// operations begin by making sure the bus is in the mode they need.
package memory

import (
	"github.com/jetsetilly/rome64/hardware/bus"
)

// Memory provides the read, write and self-test operations on the 64K
// address space behind the bus.
type Memory struct {
	ctrl *bus.Controller
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(ctrl *bus.Controller) *Memory {
	return &Memory{
		ctrl: ctrl,
	}
}

// ReadRange reads count bytes starting at the given address, calling each()
// for every byte in address order. count can be zero, in which case each()
// is never called. behaviour on wraparound past 0xffff is not defined and
// not required - no command the protocol accepts can ask for it.
//
// the operation cannot fail. the bus is put into Reading mode before the
// first access.
func (mem *Memory) ReadRange(start uint16, count uint8, each func(value uint8)) {
	mem.ctrl.EnsureMode(bus.Reading)

	b := mem.ctrl.Bus()
	addr := start
	for i := 0; i < int(count); i++ {
		b.DriveAddress(addr)
		each(b.ReadData())
		addr++
	}
}

// WriteRange writes the data bytes in order, starting at the given address.
// it returns the half-open address range actually written.
func (mem *Memory) WriteRange(start uint16, data []uint8) (uint16, uint16) {
	ws := mem.WriteStream(start)
	for _, v := range data {
		ws.Put(v)
	}
	return ws.Range()
}

// WriteStream begins a streamed write at the given address. the bus is put
// into Writing mode immediately, before any data arrives.
//
// the protocol layer writes each byte to the bus as soon as it has been
// decoded rather than buffering the whole command, so an abandoned stream
// leaves its earlier bytes committed. Range() reports how far it got.
func (mem *Memory) WriteStream(start uint16) *WriteStream {
	mem.ctrl.EnsureMode(bus.Writing)
	return &WriteStream{
		mem:   mem,
		start: start,
		next:  start,
	}
}

// WriteStream is an in-progress streamed write. create with the
// Memory.WriteStream() function.
type WriteStream struct {
	mem   *Memory
	start uint16
	next  uint16
}

// Stage latches the address of the next slot and advances the stream's
// address counter. the data byte for the slot follows with Commit().
//
// staging as soon as a byte group begins, rather than when its value is
// known, gives the latch chain the whole of the group's transmission time
// to settle. it also means the counter is already one past the slot being
// decoded if the group turns out to be malformed, which is the address the
// protocol reports for a bad data byte.
func (ws *WriteStream) Stage() {
	ws.mem.ctrl.Bus().DriveAddress(ws.next)
	ws.next++
}

// Commit pulses the write strobe with the value for the most recently
// staged slot.
func (ws *WriteStream) Commit(value uint8) {
	ws.mem.ctrl.Bus().WriteData(value)
}

// Put stages and commits a value in one step.
func (ws *WriteStream) Put(value uint8) {
	ws.Stage()
	ws.Commit(value)
}

// Range returns the half-open address range covered by the stream so far,
// including a staged but uncommitted slot.
func (ws *WriteStream) Range() (uint16, uint16) {
	return ws.start, ws.next
}
