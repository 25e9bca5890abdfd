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
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/pflag"

	"seehuhn.de/go/eexec"
	"seehuhn.de/go/eexec/kpse"
	"seehuhn.de/go/eexec/t1file"
)

// fontSource describes how font names on the command line are
// interpreted.
type fontSource struct {
	useKpse  bool
	progName string

	// r overrides the kpsewhich resolver, if set.
	r kpse.Resolver
}

func (src *fontSource) addFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&src.useKpse, "kpse", "k", false, "locate the font using kpsewhich")
	flags.StringVar(&src.progName, "progname", "", "program name passed to kpsewhich")
}

func (src *fontSource) resolver() kpse.Resolver {
	if src.r != nil {
		return src.r
	}
	return &kpse.Command{ProgName: src.progName}
}

func (src *fontSource) read(ctx context.Context, name string) (*t1file.Font, error) {
	if src.useKpse {
		path, err := src.resolver().Find(ctx, name, kpse.Type1Font)
		if err != nil {
			return nil, err
		}
		name = path
	}

	in, err := openInput(name)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	f, err := t1file.Read(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

func runPrivate(ctx context.Context, args []string) error {
	flags := newFlagSet("private")
	var src fontSource
	src.addFlags(flags)
	showLenIV := flags.Bool("lenIV", false, "only show the number of random bytes in charstrings")
	force := flags.BoolP("force", "f", false, "write binary output to a terminal")
	err := flags.Parse(args)
	if err != nil {
		return err
	}
	if flags.NArg() < 1 || flags.NArg() > 2 {
		return errUsage
	}

	f, err := src.read(ctx, flags.Arg(0))
	if err != nil {
		return err
	}

	// The private part contains binary charstrings.
	out, err := createOutput(flags.Arg(1), !*showLenIV, *force)
	if err != nil {
		return err
	}
	if *showLenIV {
		_, err = fmt.Fprintln(out, t1file.LenIV(f.Decrypt()))
	} else {
		_, err = io.Copy(out, f.PrivateReader())
	}
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func runConvert(ctx context.Context, args []string) error {
	flags := newFlagSet("convert")
	var src fontSource
	src.addFlags(flags)
	format := flags.String("to", "", "output format, pfa, pfb or pdf (default: from the file name)")
	reencrypt := flags.Bool("reencrypt", false, "encrypt the private part again, using new random bytes")
	err := flags.Parse(args)
	if err != nil {
		return err
	}
	if flags.NArg() != 2 {
		return errUsage
	}
	outName := flags.Arg(1)

	if *format == "" {
		*format = "pfb"
		if strings.HasSuffix(strings.ToLower(outName), ".pfa") {
			*format = "pfa"
		}
	}
	if *format != "pfa" && *format != "pfb" && *format != "pdf" {
		return fmt.Errorf("invalid output format %q", *format)
	}

	f, err := src.read(ctx, flags.Arg(0))
	if err != nil {
		return err
	}

	if *reencrypt {
		prefix, err := randomPrefix(eexec.DefaultLenIV)
		if err != nil {
			return err
		}
		f.SetPrivate(f.Decrypt(), prefix)
	}

	out, err := createOutput(outName, *format != "pfa", false)
	if err != nil {
		return err
	}
	switch *format {
	case "pfa":
		err = f.WritePFA(out)
	case "pfb":
		err = f.WritePFB(out)
	case "pdf":
		var l1, l2, l3 int
		l1, l2, l3, err = f.Embed(out)
		if err == nil {
			log.Printf("/Length1 %d /Length2 %d /Length3 %d", l1, l2, l3)
		}
	}
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func runFind(ctx context.Context, args []string) error {
	flags := newFlagSet("find")
	format := flags.String("format", kpse.Type1Font.String(),
		"format class, one of "+strings.Join(kpse.FormatNames(), ", "))
	progName := flags.String("progname", "", "program name passed to kpsewhich")
	err := flags.Parse(args)
	if err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return errUsage
	}

	class, err := kpse.ParseFormatClass(*format)
	if err != nil {
		return err
	}

	r := &kpse.Command{ProgName: *progName}
	path, err := r.Find(ctx, flags.Arg(0), class)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
