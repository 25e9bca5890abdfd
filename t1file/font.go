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

// Package t1file reads and writes the container formats of Type 1 fonts.
//
// A Type 1 font program consists of three parts: a clear text part, which
// ends with the "eexec" operator, the encrypted private part, and a short
// trailer made of 512 zeros and "cleartomark".  Fonts are stored either in
// PFA format, where the encrypted part is written as hex digits, or in
// PFB format, where the parts are stored as binary segments.
//
// This package only splits and joins the parts, and applies the eexec
// cipher to the private part.  The PostScript code inside the parts is
// not interpreted.
package t1file

import (
	"bufio"
	"bytes"
	"io"

	"seehuhn.de/go/eexec"
)

// Font holds the three parts of a Type 1 font program.
type Font struct {
	// Clear is the clear text part, up to and including the "eexec"
	// operator and the white space following it.
	Clear []byte

	// Private is the encrypted part, in binary form.
	Private []byte

	// Trailer holds the zeros and "cleartomark" after the encrypted part.
	Trailer []byte
}

// Read reads a Type 1 font in either PFA or PFB format.
func Read(r io.Reader) (*Font, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(2)
	if len(head) == 0 {
		if err == io.EOF {
			err = &FormatError{Err: errEmpty}
		}
		return nil, err
	}
	if IsPFB(head) {
		return ReadPFB(br)
	}
	return ReadPFA(br)
}

// Decrypt returns the clear text of the private part.
// The random bytes at the start are removed.
func (f *Font) Decrypt() []byte {
	return eexec.Decode(f.Private, eexec.EexecKey, eexec.DefaultLenIV)
}

// PrivateReader returns a reader for the clear text of the private part.
func (f *Font) PrivateReader() io.Reader {
	filter := &eexec.Filter{
		Seed:  eexec.EexecKey,
		LenIV: eexec.DefaultLenIV,
	}
	r, _ := filter.Decode(bytes.NewReader(f.Private))
	return r
}

// SetPrivate encrypts plain and stores the result as the private part.
// The prefix should consist of [eexec.DefaultLenIV] random bytes.
func (f *Font) SetPrivate(plain, prefix []byte) {
	f.Private = eexec.Encode(plain, eexec.EexecKey, prefix)
}

// Embed writes the font in the form used for font files embedded in PDF
// documents: the clear text part, followed by the binary encrypted part
// and the trailer.  The return values are the lengths of the three parts,
// as required for the /Length1, /Length2 and /Length3 entries of the
// stream dictionary.
//
// If the trailer has the standard form, it is omitted and l3 is 0.
func (f *Font) Embed(w io.Writer) (l1, l2, l3 int, err error) {
	trailer := f.Trailer
	if HasStandardTrailer(trailer) {
		trailer = nil
	}

	for _, part := range [][]byte{f.Clear, f.Private, trailer} {
		_, err = w.Write(part)
		if err != nil {
			return 0, 0, 0, err
		}
	}
	return len(f.Clear), len(f.Private), len(trailer), nil
}

// HasStandardTrailer reports whether trailer consists of 512 zeros
// followed by "cleartomark", ignoring white space.
func HasStandardTrailer(trailer []byte) bool {
	zeros := 0
	i := 0
	for ; i < len(trailer); i++ {
		c := trailer[i]
		if c == '0' {
			zeros++
		} else if !isSpace(c) {
			break
		}
	}
	if zeros != numTrailerZeros || !bytes.HasPrefix(trailer[i:], cleartomarkOp) {
		return false
	}
	for _, c := range trailer[i+len(cleartomarkOp):] {
		if !isSpace(c) {
			return false
		}
	}
	return true
}
