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
	"regexp"
	"strconv"

	"seehuhn.de/go/eexec"
)

var lenIVPattern = regexp.MustCompile(`/lenIV\s+(-?\d+)\s+def`)

// LenIV returns the number of random bytes at the start of each
// charstring, as given by the /lenIV entry in the decrypted private part
// of a font.  If the entry is missing, [eexec.DefaultLenIV] is returned.
// The value -1 indicates that charstrings are not encrypted.
func LenIV(private []byte) int {
	m := lenIVPattern.FindSubmatch(private)
	if m == nil {
		return eexec.DefaultLenIV
	}
	n, err := strconv.Atoi(string(m[1]))
	if err != nil || n < -1 {
		return eexec.DefaultLenIV
	}
	return n
}

// DecodeCharString decrypts a charstring and removes the lenIV random
// bytes at the start.  If lenIV is -1, a copy of cs is returned.
func DecodeCharString(cs []byte, lenIV int) []byte {
	if lenIV < 0 {
		return append([]byte{}, cs...)
	}
	return eexec.Decode(cs, eexec.CharStringKey, lenIV)
}

// EncodeCharString encrypts a charstring, prepending the given random
// bytes.  The number of random bytes must match the /lenIV value of the
// font.  If lenIV is -1, prefix is ignored and a copy of cs is returned.
func EncodeCharString(cs []byte, lenIV int, prefix []byte) []byte {
	if lenIV < 0 {
		return append([]byte{}, cs...)
	}
	return eexec.Encode(cs, eexec.CharStringKey, prefix)
}
