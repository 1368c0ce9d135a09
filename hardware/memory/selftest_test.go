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

	"github.com/jetsetilly/rome64/test"
)

func TestSelfTestHealthy(t *testing.T) {
	mem, _ := newMemory()

	res := mem.SelfTest()
	test.Equate(t, res.HasErrors, false)
	test.Equate(t, res.ErrorMask, 0)
}

// each data line fault must show up in the error mask as exactly the bit of
// the faulty line.
func TestSelfTestStuckDataLines(t *testing.T) {
	for b := 0; b < 8; b++ {
		mem, sb := newMemory()
		sb.StuckLow = 1 << b

		res := mem.SelfTest()
		test.Equate(t, res.HasErrors, true)
		test.Equate(t, res.ErrorMask, 1<<b)
	}

	for b := 0; b < 8; b++ {
		mem, sb := newMemory()
		sb.StuckHigh = 1 << b

		res := mem.SelfTest()
		test.Equate(t, res.HasErrors, true)
		test.Equate(t, res.ErrorMask, 1<<b)
	}
}

func TestSelfTestMultipleFaults(t *testing.T) {
	mem, sb := newMemory()
	sb.StuckLow = 0x01
	sb.StuckHigh = 0x40

	res := mem.SelfTest()
	test.Equate(t, res.HasErrors, true)
	test.Equate(t, res.ErrorMask, 0x41)
}

// the self-test destroys memory content. that is accepted behaviour but the
// pattern of the final pass must be what remains.
func TestSelfTestOverwrites(t *testing.T) {
	mem, sb := newMemory()
	sb.Poke(0x1234, 0x99)

	_ = mem.SelfTest()

	// final pass uses the all-ones mask
	test.Equate(t, sb.Peek(0x1234), 0xff^0x12^0x34)
}
