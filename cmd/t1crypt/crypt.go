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
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/eexec"
	"seehuhn.de/go/eexec/asciihex"
)

func runDecode(_ context.Context, args []string) error {
	flags := newFlagSet("decode")
	seed := flags.Uint16("seed", eexec.EexecKey, "initial value of the key register")
	skip := flags.Int("skip", eexec.DefaultLenIV, "number of random bytes to discard")
	isHex := flags.Bool("hex", false, "the input is given as hex digits")
	force := flags.BoolP("force", "f", false, "write binary output to a terminal")
	err := flags.Parse(args)
	if err != nil {
		return err
	}
	if flags.NArg() > 2 {
		return errUsage
	}

	in, err := openInput(flags.Arg(0))
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := createOutput(flags.Arg(1), true, *force)
	if err != nil {
		return err
	}

	var r io.Reader = in
	if *isHex {
		r = asciihex.NewReader(r)
	}
	r = eexec.NewReader(r, *seed, *skip)

	_, err = io.Copy(out, r)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func runEncode(_ context.Context, args []string) error {
	flags := newFlagSet("encode")
	seed := flags.Uint16("seed", eexec.EexecKey, "initial value of the key register")
	prefixLen := flags.Int("prefix-len", eexec.DefaultLenIV, "number of random bytes to prepend")
	prefixHex := flags.String("prefix", "", "bytes to prepend, as hex digits (instead of random bytes)")
	isHex := flags.Bool("hex", false, "write the output as hex digits")
	force := flags.BoolP("force", "f", false, "write binary output to a terminal")
	err := flags.Parse(args)
	if err != nil {
		return err
	}
	if flags.NArg() > 2 {
		return errUsage
	}

	var prefix []byte
	if flags.Changed("prefix") {
		prefix, err = parseHex(*prefixHex)
	} else {
		prefix, err = randomPrefix(*prefixLen)
	}
	if err != nil {
		return err
	}

	in, err := openInput(flags.Arg(0))
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := createOutput(flags.Arg(1), !*isHex, *force)
	if err != nil {
		return err
	}

	// Closing the eexec writer also closes the hex writer, but neither
	// must close the output file.
	var w io.Writer = struct{ io.Writer }{out}
	if *isHex {
		w = asciihex.NewWriter(w)
	}
	ew := eexec.NewWriter(w, *seed, prefix)

	_, err = io.Copy(ew, in)
	if err == nil {
		err = ew.Close()
	}
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func randomPrefix(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid prefix length %d", n)
	}
	prefix := make([]byte, n)
	_, err := rand.Read(prefix)
	if err != nil {
		return nil, err
	}
	return prefix, nil
}

func parseHex(s string) ([]byte, error) {
	res, err := io.ReadAll(asciihex.NewReader(strings.NewReader(s)))
	if err != nil {
		return nil, fmt.Errorf("invalid prefix %q: %w", s, err)
	}
	return res, nil
}
