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
	"errors"
	"strconv"
)

// FormatError indicates that a font file could not be split into its
// parts.
type FormatError struct {
	Pos int64
	Err error
}

func (err *FormatError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "not a valid Type 1 font file" + middle + tail
}

func (err *FormatError) Unwrap() error {
	return err.Err
}

var (
	errEmpty        = errors.New("empty file")
	errNoEexec      = errors.New("missing eexec operator")
	errSegmentType  = errors.New("invalid PFB segment type")
	errSegmentOrder = errors.New("unexpected PFB segment")
	errTruncated    = errors.New("truncated PFB segment")
	errTooLarge     = errors.New("segment too large for PFB format")
)
