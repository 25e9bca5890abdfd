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
	"encoding/binary"
	"io"
	"math"

	"github.com/go-restruct/restruct"
)

// The PFB format stores a font as a sequence of segments.  Each segment
// starts with a header of the following form:
//
//	0x80 <type> <length, 4 bytes, little endian>
//
// The EOF segment only consists of the first two bytes.
const (
	pfbMarker         = 0x80
	segmentHeaderSize = 6

	segmentASCII  = 1
	segmentBinary = 2
	segmentEOF    = 3
)

type segmentHeader struct {
	Marker uint8  // 00: always 0x80
	Type   uint8  // 01: 1 = ASCII, 2 = binary, 3 = EOF
	Length uint32 // 02: length of the segment data
}

// ReadPFB reads a Type 1 font in PFB format.
//
// Consecutive segments of the same type are joined.  ASCII segments
// before the first binary segment form the clear text part, ASCII
// segments after the binary data form the trailer.  A missing EOF segment
// at the end of the file is tolerated.
func ReadPFB(r io.Reader) (*Font, error) {
	f := &Font{}
	var clear, private, trailer bytes.Buffer

	var pos int64
	buf := make([]byte, segmentHeaderSize)
	for {
		n, err := io.ReadFull(r, buf[:2])
		if err == io.EOF && pos > 0 {
			break
		} else if err == io.EOF {
			return nil, &FormatError{Err: errEmpty}
		} else if err == io.ErrUnexpectedEOF {
			return nil, &FormatError{Pos: pos + int64(n), Err: errTruncated}
		} else if err != nil {
			return nil, err
		}
		if buf[0] != pfbMarker {
			return nil, &FormatError{Pos: pos, Err: errSegmentType}
		}
		if buf[1] == segmentEOF {
			break
		}

		n, err = io.ReadFull(r, buf[2:])
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, &FormatError{Pos: pos + 2 + int64(n), Err: errTruncated}
		} else if err != nil {
			return nil, err
		}

		var h segmentHeader
		err = restruct.Unpack(buf, binary.LittleEndian, &h)
		if err != nil {
			return nil, &FormatError{Pos: pos, Err: err}
		}
		pos += int64(segmentHeaderSize)

		var dst *bytes.Buffer
		switch h.Type {
		case segmentASCII:
			if private.Len() == 0 {
				dst = &clear
			} else {
				dst = &trailer
			}
		case segmentBinary:
			if trailer.Len() > 0 {
				return nil, &FormatError{Pos: pos, Err: errSegmentOrder}
			}
			dst = &private
		default:
			return nil, &FormatError{Pos: pos - int64(segmentHeaderSize), Err: errSegmentType}
		}

		// The length field is not trusted: only allocate what is read.
		k, err := io.CopyN(dst, r, int64(h.Length))
		pos += k
		if err == io.EOF {
			return nil, &FormatError{Pos: pos, Err: errTruncated}
		} else if err != nil {
			return nil, err
		}
	}

	if private.Len() == 0 {
		return nil, &FormatError{Err: errNoEexec}
	}
	f.Clear = clear.Bytes()
	f.Private = private.Bytes()
	f.Trailer = trailer.Bytes()
	return f, nil
}

// WritePFB writes the font in PFB format.
func (f *Font) WritePFB(w io.Writer) error {
	parts := []struct {
		tp   uint8
		data []byte
	}{
		{segmentASCII, f.Clear},
		{segmentBinary, f.Private},
		{segmentASCII, f.Trailer},
	}
	for _, part := range parts {
		if len(part.data) == 0 && part.tp == segmentASCII {
			continue
		}
		if uint64(len(part.data)) > math.MaxUint32 {
			return errTooLarge
		}
		h := &segmentHeader{
			Marker: pfbMarker,
			Type:   part.tp,
			Length: uint32(len(part.data)),
		}
		hdr, err := restruct.Pack(binary.LittleEndian, h)
		if err != nil {
			return err
		}
		_, err = w.Write(hdr)
		if err != nil {
			return err
		}
		_, err = w.Write(part.data)
		if err != nil {
			return err
		}
	}
	_, err := w.Write([]byte{pfbMarker, segmentEOF})
	return err
}

// IsPFB reports whether the data starts with a PFB segment header.
func IsPFB(head []byte) bool {
	return len(head) >= 2 && head[0] == pfbMarker &&
		(head[1] == segmentASCII || head[1] == segmentBinary)
}
