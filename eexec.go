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

// Package eexec implements the encryption scheme used by Type 1 fonts.
//
// The same cipher is used twice inside a Type 1 font program: once for
// the private part of the font, which follows the "eexec" operator (seed
// [EexecKey]), and once for every charstring inside the private part
// (seed [CharStringKey]).  In both cases the encrypted data starts with a
// few random bytes which are discarded after decryption; the number of
// these bytes is 4 for the private part and is given by the /lenIV entry
// of the Private dictionary for charstrings.
//
// The scheme is described in section 7 of "Adobe Type 1 Font Format",
// Addison-Wesley, 1990.
package eexec

// Seeds used by Type 1 fonts.
const (
	EexecKey      uint16 = 55665
	CharStringKey uint16 = 4330
)

// DefaultLenIV is the number of random bytes at the start of encrypted
// data, unless the font specifies a different value.
const DefaultLenIV = 4

const (
	c1 = 52845
	c2 = 22719
)

// state is the running key register of the cipher.
//
// The register is always updated using the byte which appears in the
// encrypted data, both when encrypting and when decrypting.  This is what
// keeps the two directions in step.  Feeding back the clear text byte
// instead still "works", but gives garbage without any error.
type state uint16

func (r *state) decrypt(c byte) byte {
	p := c ^ byte(*r>>8)
	r.update(c)
	return p
}

func (r *state) encrypt(p byte) byte {
	c := p ^ byte(*r>>8)
	r.update(c)
	return c
}

func (r *state) update(c byte) {
	*r = (state(c)+*r)*c1 + c2
}

// Decode decrypts data which was encrypted with the given seed.  The first
// skip bytes of the result are discarded.  A negative skip is treated as 0,
// and if skip is larger than len(cipher) the result is empty.
//
// The input slice is not modified.
func Decode(cipher []byte, seed uint16, skip int) []byte {
	skip = max(skip, 0)
	skip = min(skip, len(cipher))

	plain := make([]byte, len(cipher))
	r := state(seed)
	for i, c := range cipher {
		plain[i] = r.decrypt(c)
	}
	return plain[skip:]
}

// Encode encrypts prefix followed by data, using the given seed.  The
// result has length len(prefix)+len(data).
//
// For Type 1 fonts, prefix should consist of random bytes.  The cipher
// itself makes no assumptions about the prefix; to recover data, call
// Decode with skip set to len(prefix).
func Encode(data []byte, seed uint16, prefix []byte) []byte {
	cipher := make([]byte, len(prefix)+len(data))
	r := state(seed)
	for i, p := range prefix {
		cipher[i] = r.encrypt(p)
	}
	out := cipher[len(prefix):]
	for i, p := range data {
		out[i] = r.encrypt(p)
	}
	return cipher
}
