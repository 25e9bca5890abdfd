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

package main

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

var errTerminal = errors.New("refusing to write binary data to a terminal (use --force to override)")

func openInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// output is a destination file.  Close must be called to detect write
// errors.
type output struct {
	io.Writer
	fd *os.File
}

func createOutput(name string, binary, force bool) (*output, error) {
	if name == "" || name == "-" {
		if binary && !force && term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errTerminal
		}
		return &output{Writer: os.Stdout}, nil
	}

	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return &output{Writer: fd, fd: fd}, nil
}

func (out *output) Close() error {
	if out.fd == nil {
		return nil
	}
	return out.fd.Close()
}
