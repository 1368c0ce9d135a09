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

package memory

import (
	"github.com/jetsetilly/rome64/hardware/bus"
	"github.com/jetsetilly/rome64/logger"
)

// TestResult accumulates the outcome of a self-test pass over the full
// address space. a fresh TestResult is created for every invocation.
type TestResult struct {
	// HasErrors is true if any verification mismatch occurred.
	HasErrors bool

	// ErrorMask is the OR of the XOR of every actual-vs-expected pair that
	// disagreed. it identifies which bit positions ever differed across the
	// whole sweep, not at which addresses.
	ErrorMask uint8
}

// the two generator masks used by SelfTest(). the all-zeroes mask catches
// data lines stuck high, the all-ones mask catches data lines stuck low,
// and in both cases the address-dependent component of the pattern catches
// address line faults independently of the data lines.
var selfTestMasks = [...]uint8{0x00, 0xff}

// pattern is the value expected at an address for a given generator mask.
func pattern(mask uint8, addr uint16) uint8 {
	return mask ^ uint8(addr) ^ uint8(addr>>8)
}

// SelfTest exercises every address in the 64K space. for each generator
// mask it writes the pattern value at every address and then reads every
// address back, comparing against the expected pattern.
func (mem *Memory) SelfTest() TestResult {
	res := TestResult{}

	b := mem.ctrl.Bus()
	for _, mask := range selfTestMasks {
		mem.ctrl.EnsureMode(bus.Writing)
		for a := 0; a <= 0xffff; a++ {
			b.DriveAddress(uint16(a))
			b.WriteData(pattern(mask, uint16(a)))
		}

		mem.ctrl.EnsureMode(bus.Reading)
		for a := 0; a <= 0xffff; a++ {
			b.DriveAddress(uint16(a))
			v := b.ReadData()
			if exp := pattern(mask, uint16(a)); v != exp {
				res.HasErrors = true
				res.ErrorMask |= v ^ exp
			}
		}
	}

	if res.HasErrors {
		logger.Logf("selftest", "failed: error mask %08b", res.ErrorMask)
	} else {
		logger.Log("selftest", "passed")
	}

	return res
}
