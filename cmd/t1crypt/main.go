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

// T1crypt encrypts and decrypts Type 1 font data.
//
// Usage:
//
//	t1crypt decode  [--seed N] [--skip N] [--hex] [in [out]]
//	t1crypt encode  [--seed N] [--prefix-len N | --prefix HEX] [--hex] [in [out]]
//	t1crypt private [--kpse] [--progname P] [--lenIV] font [out]
//	t1crypt convert [--to pfa|pfb|pdf] [--reencrypt] [--kpse] [--progname P] font out
//	t1crypt find    [--format CLASS] [--progname P] name
//
// Input and output default to stdin and stdout; "-" can be used
// explicitly.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
)

type command struct {
	name  string
	args  string
	descr string
	run   func(ctx context.Context, args []string) error
}

var commands = []*command{
	{"decode", "[in [out]]", "decrypt eexec data", runDecode},
	{"encode", "[in [out]]", "encrypt data using the eexec cipher", runEncode},
	{"private", "font [out]", "show the decrypted private part of a font", runPrivate},
	{"convert", "font out", "convert a font between PFA and PFB format", runConvert},
	{"find", "name", "locate a file using kpsewhich", runFind},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("t1crypt: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var cmd *command
	for _, c := range commands {
		if c.name == os.Args[1] {
			cmd = c
		}
	}
	if cmd == nil {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.run(ctx, os.Args[2:])
	stop()
	if errors.Is(err, pflag.ErrHelp) {
		return
	} else if errors.Is(err, errUsage) {
		fmt.Fprintf(os.Stderr, "usage: t1crypt %s [options] %s\n", cmd.name, cmd.args)
		os.Exit(2)
	} else if err != nil {
		log.Fatal(err)
	}
}

var errUsage = errors.New("wrong number of arguments")

func usage() {
	fmt.Fprintln(os.Stderr, "usage: t1crypt <command> [options] [arguments]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", c.name, c.descr)
	}
}

func newFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SortFlags = false
	return flags
}
