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
	"bufio"
	"io"

	"github.com/jetsetilly/rome64/curated"
	"github.com/jetsetilly/rome64/hardware/memory"
	"github.com/jetsetilly/rome64/version"
)

// Device is the set of operations a decoded command is dispatched to. the
// hardware.Device type implements it.
type Device interface {
	ReadRange(start uint16, count uint8, each func(value uint8))
	WriteStream(start uint16) *memory.WriteStream
	SelfTest() memory.TestResult
	ExternalControl()
}

// Decoder reads command lines from the serial channel a byte at a time,
// parsing strictly left-to-right, and dispatches to the device as soon as
// enough of the line has been decoded. parser state is no more than the
// current position in the line - there is no lookahead and no buffering of
// the line being decoded.
type Decoder struct {
	src *bufio.Reader
	dev Device
	enc *Encoder

	// whether the terminator of the current line has already been consumed.
	// a decode failure must discard the remainder of the line but no more
	// than that.
	eol bool
}

// NewDecoder is the preferred method of initialisation for the Decoder
// type.
func NewDecoder(src io.Reader, dev Device, enc *Encoder) *Decoder {
	return &Decoder{
		src: bufio.NewReader(src),
		dev: dev,
		enc: enc,
	}
}

// Step decodes and executes one command line, emitting exactly one response
// line for every accepted command. protocol errors are reported to the host
// and recovered from locally; the returned error is non-nil only for a
// fault on the channel itself, which ends the session.
func (dec *Decoder) Step() error {
	dec.eol = false

	tag, err := dec.next()
	if err != nil {
		return err
	}

	// an empty line is not a command. no response
	if tag == terminator {
		return nil
	}

	err = dec.command(tag)
	if err == nil {
		return nil
	}
	if !curated.IsAny(err) {
		return err
	}

	// resynchronise by discarding the remainder of the malformed line, even
	// if no further parsing is going to happen
	if serr := dec.skipLine(); serr != nil {
		return serr
	}

	dec.enc.Error(err)
	return nil
}

func (dec *Decoder) command(tag byte) error {
	switch tag {
	case 'V':
		if err := dec.endOfLine(tag); err != nil {
			return err
		}
		dec.enc.Version(version.Identity)

	case 'P':
		payload, err := dec.untilTerminator()
		if err != nil {
			return err
		}
		dec.enc.Echo(payload)

	case 'T':
		if err := dec.endOfLine(tag); err != nil {
			return err
		}
		dec.enc.SelfTest(dec.dev.SelfTest())

	case 'E':
		if err := dec.endOfLine(tag); err != nil {
			return err
		}
		dec.dev.ExternalControl()
		dec.enc.ExternalOK()

	case 'W':
		return dec.write()

	case 'R':
		return dec.read()

	default:
		return curated.Errorf(BadCommand, tag)
	}

	return nil
}

// write decodes and executes a write command. the data bytes are streamed:
// every byte group goes to the bus as soon as its second digit has been
// decoded, so a malformed group leaves the earlier bytes committed.
func (dec *Decoder) write() error {
	addr, err := dec.hexField('W', "address", 4)
	if err != nil {
		return err
	}

	ws := dec.dev.WriteStream(addr)

	for {
		b, err := dec.next()
		if err != nil {
			return err
		}

		switch {
		case b == terminator:
			dec.enc.WriteRange(ws.Range())
			return nil

		case b == ' ':
			// optional separator before the next byte group

		default:
			ws.Stage()

			hi, ok := hexVal(b)
			if !ok {
				return badData(ws)
			}

			b, err = dec.next()
			if err != nil {
				return err
			}
			if b == terminator || b == ' ' {
				// byte group cut short
				return curated.Errorf(BadSyntax, b, 'W')
			}
			lo, ok := hexVal(b)
			if !ok {
				return badData(ws)
			}

			ws.Commit(hi<<4 | lo)
		}
	}
}

// read decodes and executes a read command. unlike write, nothing is
// emitted until the whole line has parsed cleanly.
func (dec *Decoder) read() error {
	addr, err := dec.hexField('R', "address", 4)
	if err != nil {
		return err
	}
	count, err := dec.hexField('R', "size", 2)
	if err != nil {
		return err
	}
	if err := dec.endOfLine('R'); err != nil {
		return err
	}

	dec.enc.ReadBegin()
	dec.dev.ReadRange(addr, uint8(count), dec.enc.ReadData)
	dec.enc.ReadEnd()
	return nil
}

func badData(ws *memory.WriteStream) error {
	_, next := ws.Range()
	return curated.Errorf(BadArgumentData, next)
}

// next reads a single byte from the channel, noting whether it was the line
// terminator.
func (dec *Decoder) next() (byte, error) {
	b, err := dec.src.ReadByte()
	if err != nil {
		return 0, err
	}
	dec.eol = b == terminator
	return b, nil
}

// skipLine consumes input up to and including the line terminator, unless
// the terminator has already been consumed.
func (dec *Decoder) skipLine() error {
	for !dec.eol {
		if _, err := dec.next(); err != nil {
			return err
		}
	}
	return nil
}

// endOfLine requires the next byte to be the line terminator.
func (dec *Decoder) endOfLine(family byte) error {
	b, err := dec.next()
	if err != nil {
		return err
	}
	if b != terminator {
		return curated.Errorf(BadSyntax, b, family)
	}
	return nil
}

// untilTerminator returns everything up to the line terminator.
func (dec *Decoder) untilTerminator() ([]byte, error) {
	payload := make([]byte, 0, 64)
	for {
		b, err := dec.next()
		if err != nil {
			return nil, err
		}
		if b == terminator {
			return payload, nil
		}
		payload = append(payload, b)
	}
}

// hexField reads a fixed-width hex field of the given number of digits.
// upper and lower case digits are both accepted. a separator or terminator
// inside the field is a syntax fault; any other non-digit is an argument
// fault against the named field.
func (dec *Decoder) hexField(family byte, field string, digits int) (uint16, error) {
	var v uint16
	for i := 0; i < digits; i++ {
		b, err := dec.next()
		if err != nil {
			return 0, err
		}
		if b == terminator || b == ' ' {
			return 0, curated.Errorf(BadSyntax, b, family)
		}
		d, ok := hexVal(b)
		if !ok {
			return 0, curated.Errorf(BadArgument, field)
		}
		v = v<<4 | uint16(d)
	}
	return v, nil
}

func hexVal(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	}
	return 0, false
}
