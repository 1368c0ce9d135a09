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

package protocol_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/rome64/hardware"
	"github.com/jetsetilly/rome64/hardware/simbus"
	"github.com/jetsetilly/rome64/protocol"
	"github.com/jetsetilly/rome64/test"
)

// drain steps the decoder until the input is exhausted. anything other than
// a clean end of input is a test failure.
func drain(t *testing.T, dec *protocol.Decoder) {
	t.Helper()
	for {
		err := dec.Step()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("session ended with: %v", err)
		}
	}
}

// session runs a scripted exchange against a fresh device and compares the
// full transcript of responses. the simulated bus is returned for state
// inspection.
func session(t *testing.T, input string, expected string) *simbus.SimBus {
	t.Helper()

	sb := simbus.NewSimBus()
	out := &test.CompareWriter{}
	dec := protocol.NewDecoder(strings.NewReader(input), hardware.NewDevice(sb), protocol.NewEncoder(out))
	drain(t, dec)

	if !out.Compare(expected) {
		t.Errorf("unexpected transcript: %q (wanted %q)", out.String(), expected)
	}

	return sb
}

func TestVersion(t *testing.T) {
	session(t, "V\n", "VROME2.0\n")
}

func TestEcho(t *testing.T) {
	session(t, "Phello, rome\n", "phello, rome\n")

	// an empty payload must be echoed as faithfully as any other
	session(t, "P\n", "p\n")
}

func TestWriteRead(t *testing.T) {
	session(t, "W0000DEADC0DE\nR000004\n", "W00000004\nRDEADC0DE\n")
}

func TestWriteSeparators(t *testing.T) {
	// spaces between byte groups are accepted on input and the response is
	// no different
	sb := session(t, "W0100 CA FE\n", "W01000102\n")
	test.Equate(t, sb.Peek(0x0100), 0xca)
	test.Equate(t, sb.Peek(0x0101), 0xfe)
}

func TestWriteEmpty(t *testing.T) {
	session(t, "W4000\n", "W40004000\n")
}

func TestWriteLowerCaseDigits(t *testing.T) {
	session(t, "W0000de\nR000001\n", "W00000001\nRDE\n")
}

func TestReadZeroCount(t *testing.T) {
	// zero bytes is a valid request and produces a bare response line
	session(t, "R100000\n", "R\n")
}

func TestUnknownCommand(t *testing.T) {
	session(t, "X\n", "!CMD unrecognised command 'X'\n")
}

func TestBadFields(t *testing.T) {
	session(t, "RZZZZ04\n", "!ARG bad address field\n")
	session(t, "R0000ZZ\n", "!ARG bad size field\n")
	session(t, "WXY00\n", "!ARG bad address field\n")
}

func TestBadSyntax(t *testing.T) {
	// separators are not permitted inside a field
	session(t, "R0000 04\n", "!SYN unexpected byte ' ' in R command\n")

	// a field cut short by the terminator
	session(t, "W00\n", "!SYN unexpected byte '\\n' in W command\n")

	// a byte group cut short
	session(t, "W0000D\n", "!SYN unexpected byte '\\n' in W command\n")
	session(t, "W0000D CA\n", "!SYN unexpected byte ' ' in W command\n")

	// trailing bytes after a complete command
	session(t, "Vx\n", "!SYN unexpected byte 'x' in V command\n")
	session(t, "T junk\n", "!SYN unexpected byte ' ' in T command\n")
}

// a malformed byte group fails the command but the groups before it have
// already been written. the reported address is one past the slot that
// failed to decode, the stream having already staged it.
func TestWriteBadDataCommits(t *testing.T) {
	sb := session(t, "W0000DE-D\n", "!ARG bad data field at 0002\n")
	test.Equate(t, sb.Peek(0x0000), 0xde)
	test.Equate(t, sb.Peek(0x0001), 0x00)
}

func TestEmptyLines(t *testing.T) {
	// empty lines provoke no response at all
	session(t, "\n\nV\n\n", "VROME2.0\n")
}

func TestErrorRecovery(t *testing.T) {
	// a failed command never takes the session down. parsing resumes at the
	// start of the next line
	session(t, "X\nV\n", "!CMD unrecognised command 'X'\nVROME2.0\n")
	session(t, "W0000DE-D garbage to discard\nR000001\n",
		"!ARG bad data field at 0002\nRDE\n")
}

func TestExternalControl(t *testing.T) {
	sb := session(t, "E\n", "EOK\n")
	test.Equate(t, sb.Owned(), false)
	test.Equate(t, sb.AddressEnabled(), false)

	// any memory operation reclaims the bus
	sb = session(t, "E\nW0000AA\nR000001\n", "EOK\nW00000001\nRAA\n")
	test.Equate(t, sb.Owned(), true)
}

func TestSelfTestResponses(t *testing.T) {
	session(t, "T\n", "TOK\n")

	// a failed self-test is a normal response. the bit-error mask travels on
	// an informational line ahead of it
	sb := simbus.NewSimBus()
	sb.StuckHigh = 0x10
	out := &test.CompareWriter{}
	dec := protocol.NewDecoder(strings.NewReader("T\n"), hardware.NewDevice(sb), protocol.NewEncoder(out))
	drain(t, dec)
	test.ExpectedSuccess(t, out.Compare("# self-test error mask 10\nTFAIL\n"))
}
