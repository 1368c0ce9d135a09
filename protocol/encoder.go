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

package protocol

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jetsetilly/rome64/hardware/memory"
)

// every message ends with a single line-feed byte.
const terminator = '\n'

// Encoder writes response, error and informational lines to the serial
// channel. write errors are not reported - if the channel has gone away the
// next read will notice and end the command loop.
type Encoder struct {
	output io.Writer
}

// NewEncoder is the preferred method of initialisation for the Encoder
// type.
func NewEncoder(output io.Writer) *Encoder {
	return &Encoder{
		output: output,
	}
}

func (enc *Encoder) line(s string) {
	io.WriteString(enc.output, s)
	enc.output.Write([]byte{terminator})
}

// Version responds to a version request.
func (enc *Encoder) Version(identity string) {
	enc.line("V" + identity)
}

// Echo responds to a ping. the response tag is the request tag with its
// case inverted and the payload is the exact byte sequence received.
func (enc *Encoder) Echo(payload []byte) {
	enc.output.Write([]byte{'p'})
	enc.output.Write(payload)
	enc.output.Write([]byte{terminator})
}

// SelfTest reports a self-test outcome. a failure is a normal response, not
// a protocol error, but the bit-error mask is reported on an informational
// line ahead of the result.
func (enc *Encoder) SelfTest(res memory.TestResult) {
	if res.HasErrors {
		enc.Info(fmt.Sprintf("self-test error mask %02X", res.ErrorMask))
		enc.line("TFAIL")
		return
	}
	enc.line("TOK")
}

// ExternalOK confirms that the bus has been handed to the external
// interface.
func (enc *Encoder) ExternalOK() {
	enc.line("EOK")
}

// WriteRange confirms a write with the half-open address range actually
// written.
func (enc *Encoder) WriteRange(start uint16, end uint16) {
	enc.line(fmt.Sprintf("W%04X%04X", start, end))
}

// ReadBegin opens a read response. follow with ReadData() for every byte
// and ReadEnd() to finish the line. a read of zero bytes is legitimate and
// produces a bare R line.
func (enc *Encoder) ReadBegin() {
	enc.output.Write([]byte{'R'})
}

// ReadData appends one byte value to an open read response.
func (enc *Encoder) ReadData(value uint8) {
	fmt.Fprintf(enc.output, "%02X", value)
}

// ReadEnd closes a read response.
func (enc *Encoder) ReadEnd() {
	enc.output.Write([]byte{terminator})
}

// Error reports a protocol error to the host.
func (enc *Encoder) Error(err error) {
	enc.line("!" + err.Error())
}

// Info emits an informational line. hosts tolerate and ignore these.
func (enc *Encoder) Info(s string) {
	enc.line("# " + s)
}

// InfoWriter adapts the serial channel into an io.Writer on which every
// line written comes out as an informational line. it is installed as the
// central logger's echo writer so that log entries are visible to the host.
type InfoWriter struct {
	output io.Writer
}

// NewInfoWriter is the preferred method of initialisation for the
// InfoWriter type.
func NewInfoWriter(output io.Writer) *InfoWriter {
	return &InfoWriter{
		output: output,
	}
}

// Write implements the io.Writer interface.
func (w *InfoWriter) Write(p []byte) (int, error) {
	for _, l := range bytes.Split(bytes.TrimRight(p, "\n"), []byte{terminator}) {
		fmt.Fprintf(w.output, "# %s%c", l, terminator)
	}
	return len(p), nil
}
