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

// Package asciihex implements the hexadecimal form of eexec-encrypted data.
//
// Type 1 fonts in PFA format store the encrypted part of the font as
// hexadecimal digits, split into lines.  Whitespace between the digits
// is ignored when reading.
package asciihex

import (
	"io"
	"strconv"
)

// LineLength is the number of hex digits per line, written by a Writer.
const LineLength = 64

// InvalidByteError is returned by a Reader when the input contains a
// byte which is neither a hex digit nor white space.
type InvalidByteError struct {
	Pos  int64
	Byte byte
}

func (err *InvalidByteError) Error() string {
	return "asciihex: invalid byte " + strconv.QuoteRune(rune(err.Byte)) +
		" at offset " + strconv.FormatInt(err.Pos, 10)
}

// IsHex reports whether the encrypted data starting with head is stored in
// hexadecimal form.  This uses the rule from section 7.2 of the Type 1
// font specification: the data is hex, if the first four bytes are all hex
// digits.  White space before the data must be removed by the caller.
func IsHex(head []byte) bool {
	if len(head) < 4 {
		return false
	}
	for _, c := range head[:4] {
		if unhex[c] < 0 {
			return false
		}
	}
	return true
}

// Reader decodes hexadecimal data.
type Reader struct {
	r    io.Reader
	buf  [512]byte
	pos  int
	nbuf int
	off  int64
	hi   int
	err  error
}

// NewReader returns a reader which decodes the hex digits read from r.
// If the input contains an odd number of digits, a final 0 is appended.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, hi: -1}
}

// Read implements the [io.Reader] interface.
func (r *Reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if r.pos == r.nbuf {
			if r.err != nil {
				break
			}
			r.nbuf, r.err = r.r.Read(r.buf[:])
			r.pos = 0
			continue
		}

		c := r.buf[r.pos]
		r.pos++
		r.off++

		v := unhex[c]
		if v < 0 {
			if isSpace[c] {
				continue
			}
			r.err = &InvalidByteError{Pos: r.off - 1, Byte: c}
			r.pos = r.nbuf
			return n, r.err
		}
		if r.hi < 0 {
			r.hi = int(v)
			continue
		}
		p[n] = byte(r.hi<<4) | byte(v)
		n++
		r.hi = -1
	}

	if n < len(p) && r.err == io.EOF && r.hi >= 0 {
		p[n] = byte(r.hi << 4)
		n++
		r.hi = -1
	}
	if n > 0 && r.err == io.EOF {
		return n, nil
	}
	if n == len(p) {
		return n, nil
	}
	return n, r.err
}

// Writer encodes data as hex digits, in lines of [LineLength] digits.
type Writer struct {
	w   io.Writer
	col int
	buf []byte
}

// NewWriter returns a writer which writes the hex encoding of the data to
// w.  The final line is terminated by Close.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:   w,
		buf: make([]byte, 0, 2*512+512/(LineLength/2)+1),
	}
}

// Write implements the [io.Writer] interface.
func (w *Writer) Write(p []byte) (int, error) {
	n := 0
	for len(p) > 0 {
		k := min(len(p), 512)
		for _, b := range p[:k] {
			if w.col == LineLength {
				w.buf = append(w.buf, '\n')
				w.col = 0
			}
			w.buf = append(w.buf, hexDigits[b>>4], hexDigits[b&15])
			w.col += 2
		}
		_, err := w.w.Write(w.buf)
		w.buf = w.buf[:0]
		if err != nil {
			return n, err
		}
		n += k
		p = p[k:]
	}
	return n, nil
}

// Close terminates the last line.  If the underlying writer implements
// [io.Closer], it is closed.
func (w *Writer) Close() error {
	if w.col > 0 {
		_, err := w.w.Write([]byte{'\n'})
		if err != nil {
			return err
		}
		w.col = 0
	}
	if c, ok := w.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

const hexDigits = "0123456789abcdef"

var unhex [256]int8

func init() {
	for i := range unhex {
		unhex[i] = -1
	}
	for i := 0; i < 10; i++ {
		unhex['0'+i] = int8(i)
	}
	for i := 0; i < 6; i++ {
		unhex['a'+i] = int8(10 + i)
		unhex['A'+i] = int8(10 + i)
	}
}

var isSpace = [256]bool{
	0:  true,
	9:  true,
	10: true,
	12: true,
	13: true,
	32: true,
}
