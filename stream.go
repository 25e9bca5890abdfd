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

package eexec

import (
	"errors"
	"io"
)

// Reader decrypts data read from an underlying reader.
// A Reader must not be used concurrently from more than one goroutine.
type Reader struct {
	r    io.Reader
	st   state
	skip int
	buf  [512]byte
}

// NewReader returns a reader which decrypts the data read from r.
// The first skip decrypted bytes are discarded.
func NewReader(r io.Reader, seed uint16, skip int) *Reader {
	return &Reader{
		r:    r,
		st:   state(seed),
		skip: max(skip, 0),
	}
}

// Read implements the [io.Reader] interface.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for r.skip > 0 {
		k := min(r.skip, len(r.buf))
		n, err := r.r.Read(r.buf[:k])
		for _, c := range r.buf[:n] {
			r.st.update(c)
		}
		r.skip -= n
		if err != nil {
			// the input ended before the random bytes were consumed
			return 0, err
		}
	}

	n, err := r.r.Read(p)
	for i, c := range p[:n] {
		p[i] = r.st.decrypt(c)
	}
	return n, err
}

// Writer encrypts data and writes it to an underlying writer.
// A Writer must not be used concurrently from more than one goroutine.
type Writer struct {
	w       io.Writer
	st      state
	prefix  []byte
	started bool
	buf     []byte
	err     error
}

// NewWriter returns a writer which encrypts data and writes the result to
// w.  The bytes in prefix are encrypted and written before the first byte
// of data.
func NewWriter(w io.Writer, seed uint16, prefix []byte) *Writer {
	return &Writer{
		w:      w,
		st:     state(seed),
		prefix: append([]byte(nil), prefix...),
		buf:    make([]byte, 512),
	}
}

// Write implements the [io.Writer] interface.
func (w *Writer) Write(p []byte) (int, error) {
	err := w.writePrefix()
	if err != nil {
		return 0, err
	}

	n := 0
	for len(p) > 0 {
		k := min(len(p), len(w.buf))
		for i, c := range p[:k] {
			w.buf[i] = w.st.encrypt(c)
		}
		m, err := w.w.Write(w.buf[:k])
		n += m
		if err == nil && m < k {
			err = io.ErrShortWrite
		}
		if err != nil {
			w.err = err
			return n, err
		}
		p = p[k:]
	}
	return n, nil
}

// Close writes the encrypted prefix, if this has not happened yet.
// If the underlying writer implements [io.Closer], it is closed.
func (w *Writer) Close() error {
	err := w.writePrefix()
	if err != nil {
		return err
	}
	if c, ok := w.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (w *Writer) writePrefix() error {
	if w.err != nil {
		return w.err
	}
	if w.started {
		return nil
	}
	w.started = true

	if len(w.prefix) == 0 {
		return nil
	}
	for i, c := range w.prefix {
		w.prefix[i] = w.st.encrypt(c)
	}
	n, err := w.w.Write(w.prefix)
	if err == nil && n < len(w.prefix) {
		err = io.ErrShortWrite
	}
	w.err = err
	w.prefix = nil
	return w.err
}

// Filter describes one application of the eexec cipher.
//
// Encode prepends Prefix to the data, and Decode discards the first LenIV
// bytes.  For data to survive a round trip, LenIV must equal len(Prefix).
type Filter struct {
	Seed   uint16
	LenIV  int
	Prefix []byte
}

// NewFilter returns the filter used for the private part of Type 1 fonts.
// The prefix must consist of [DefaultLenIV] random bytes; it is only
// used for encoding.
func NewFilter(prefix []byte) *Filter {
	return &Filter{
		Seed:   EexecKey,
		LenIV:  DefaultLenIV,
		Prefix: prefix,
	}
}

// Encode returns a writer which encrypts data and writes it to w.
// Closing the returned writer also closes w.
func (f *Filter) Encode(w io.WriteCloser) (io.WriteCloser, error) {
	if len(f.Prefix) != f.LenIV {
		return nil, errPrefixLength
	}
	return NewWriter(w, f.Seed, f.Prefix), nil
}

// Decode returns a reader which decrypts the data read from r.
func (f *Filter) Decode(r io.Reader) (io.Reader, error) {
	if f.LenIV < 0 {
		return nil, errNegativeLenIV
	}
	return NewReader(r, f.Seed, f.LenIV), nil
}

var (
	errPrefixLength  = errors.New("eexec: prefix length does not match lenIV")
	errNegativeLenIV = errors.New("eexec: negative lenIV")
)
