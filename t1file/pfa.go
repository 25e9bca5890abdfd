// seehuhn.de/go/eexec - the Type 1 font eexec cipher
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package t1file

import (
	"bytes"
	"errors"
	"io"

	"seehuhn.de/go/eexec/asciihex"
)

var (
	eexecOp       = []byte("eexec")
	cleartomarkOp = []byte("cleartomark")
)

// numTrailerZeros is the number of "0" characters which separate the
// encrypted part from the trailer.
const numTrailerZeros = 512

// ReadPFA reads a Type 1 font in PFA format.  The encrypted part may be
// stored either as hex digits or in binary.
func ReadPFA(r io.Reader) (*Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, &FormatError{Err: errEmpty}
	}

	idx := bytes.Index(data, eexecOp)
	if idx < 0 {
		return nil, &FormatError{Err: errNoEexec}
	}
	start := idx + len(eexecOp)

	// The operator is followed by a single white space character, or by
	// CR LF.  Binary data starts immediately afterwards.
	if bytes.HasPrefix(data[start:], []byte("\r\n")) {
		start += 2
	} else if start < len(data) && isSpace(data[start]) {
		start++
	}

	hexStart := start
	for hexStart < len(data) && isSpace(data[hexStart]) {
		hexStart++
	}
	isHex := asciihex.IsHex(data[hexStart:])
	if isHex {
		start = hexStart
	}

	end := trailerStart(data, start)
	if !isHex && end < len(data) {
		// the line break before the zeros belongs to the trailer
		if end > start && data[end-1] == '\n' {
			end--
		}
		if end > start && data[end-1] == '\r' {
			end--
		}
	}

	f := &Font{
		Clear:   data[:start],
		Trailer: data[end:],
	}
	if !isHex {
		f.Private = data[start:end]
		return f, nil
	}

	private, err := io.ReadAll(asciihex.NewReader(bytes.NewReader(data[start:end])))
	if err != nil {
		var invalid *asciihex.InvalidByteError
		if errors.As(err, &invalid) {
			return nil, &FormatError{Pos: int64(start) + invalid.Pos, Err: err}
		}
		return nil, err
	}
	f.Private = private
	return f, nil
}

// trailerStart returns the position where the zeros before "cleartomark"
// begin.  If the font has no trailer, len(data) is returned.
func trailerStart(data []byte, start int) int {
	end := bytes.LastIndex(data, cleartomarkOp)
	if end < start {
		return len(data)
	}

	zeros := 0
	for end > start && zeros < numTrailerZeros {
		c := data[end-1]
		if c == '0' {
			zeros++
		} else if !isSpace(c) {
			break
		}
		end--
	}
	return end
}

// WritePFA writes the font in PFA format.  The encrypted part is written
// as lines of hex digits.
func (f *Font) WritePFA(w io.Writer) error {
	_, err := w.Write(f.Clear)
	if err != nil {
		return err
	}
	if n := len(f.Clear); n > 0 && !isSpace(f.Clear[n-1]) {
		_, err = w.Write([]byte{'\n'})
		if err != nil {
			return err
		}
	}

	// hide the Close method of w from the hex writer
	hw := asciihex.NewWriter(struct{ io.Writer }{w})
	_, err = hw.Write(f.Private)
	if err != nil {
		return err
	}
	err = hw.Close()
	if err != nil {
		return err
	}

	_, err = w.Write(f.Trailer)
	return err
}

func isSpace(c byte) bool {
	switch c {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}
