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

// Mode describes the current bus-access configuration. exactly one mode is
// active at any time.
type Mode int

// List of valid Mode values. Uninitialized is the mode at power-up and is
// never returned to.
const (
	Uninitialized Mode = iota
	Writing
	Reading
	ExternalControl
)

func (mode Mode) String() string {
	switch mode {
	case Uninitialized:
		return "uninitialized"
	case Writing:
		return "writing"
	case Reading:
		return "reading"
	case ExternalControl:
		return "external control"
	}
	panic("unknown bus mode")
}
