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
	"testing"

	"github.com/jetsetilly/rome64/protocol"
	"github.com/jetsetilly/rome64/test"
)

func TestInfoWriter(t *testing.T) {
	out := &test.CompareWriter{}
	w := protocol.NewInfoWriter(out)

	io.WriteString(w, "channel open\n")
	test.ExpectedSuccess(t, out.Compare("# channel open\n"))

	// every line of a multi-line write gets its own prefix
	out.Clear()
	io.WriteString(w, "first\nsecond\n")
	test.ExpectedSuccess(t, out.Compare("# first\n# second\n"))
}

func TestInfoLine(t *testing.T) {
	out := &test.CompareWriter{}
	enc := protocol.NewEncoder(out)

	enc.Info("bus released")
	test.ExpectedSuccess(t, out.Compare("# bus released\n"))
}
