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
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/eexec"
	"seehuhn.de/go/eexec/kpse"
	"seehuhn.de/go/eexec/t1file"
)

const testPrivate = "dup /Private 8 dict dup begin\n/lenIV 4 def\nend\nmark currentfile closefile\n"

func writeTestFont(t *testing.T, dir string) string {
	t.Helper()

	f := &t1file.Font{
		Clear:   []byte("%!PS-AdobeFont-1.0: Test\ncurrentfile eexec\n"),
		Trailer: append(bytes.Repeat([]byte("0"), 512), "\ncleartomark\n"...),
	}
	f.SetPrivate([]byte(testPrivate), []byte{1, 2, 3, 4})

	buf := &bytes.Buffer{}
	err := f.WritePFB(buf)
	if err != nil {
		t.Fatal(err)
	}
	name := filepath.Join(dir, "test.pfb")
	err = os.WriteFile(name, buf.Bytes(), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return name
}

func readFile(t *testing.T, name string) []byte {
	t.Helper()
	body, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func TestEncodeDecode(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	data := []byte("/CharStrings 2 dict dup begin\n")
	in := filepath.Join(dir, "in")
	enc := filepath.Join(dir, "enc")
	dec := filepath.Join(dir, "dec")
	err := os.WriteFile(in, data, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	for _, isHex := range []bool{false, true} {
		args := []string{"--prefix", "00 00 00 00", "--seed", "4330", in, enc}
		if isHex {
			args = append([]string{"--hex"}, args...)
		}
		err = runEncode(ctx, args)
		if err != nil {
			t.Fatal(err)
		}

		want := eexec.Encode(data, eexec.CharStringKey, make([]byte, 4))
		if !isHex {
			if d := cmp.Diff(want, readFile(t, enc)); d != "" {
				t.Errorf("encode mismatch (-want +got):\n%s", d)
			}
		}

		args = []string{"--seed", "4330", enc, dec}
		if isHex {
			args = append([]string{"--hex"}, args...)
		}
		err = runDecode(ctx, args)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(data, readFile(t, dec)); d != "" {
			t.Errorf("hex=%t: decode mismatch (-want +got):\n%s", isHex, d)
		}
	}
}

func TestEncodeRandom(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	enc := filepath.Join(dir, "enc")
	err := os.WriteFile(in, []byte("abc"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	err = runEncode(ctx, []string{"--prefix-len", "7", in, enc})
	if err != nil {
		t.Fatal(err)
	}
	body := readFile(t, enc)
	if len(body) != 10 {
		t.Fatalf("wrong length %d", len(body))
	}
	if got := eexec.Decode(body, eexec.EexecKey, 7); string(got) != "abc" {
		t.Errorf("wrong decoding %q", got)
	}
}

func TestPrivate(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	font := writeTestFont(t, dir)
	out := filepath.Join(dir, "private.txt")

	err := runPrivate(ctx, []string{font, out})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(testPrivate, string(readFile(t, out))); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	err = runPrivate(ctx, []string{"--lenIV", font, out})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(readFile(t, out)); got != "4\n" {
		t.Errorf("wrong lenIV output %q", got)
	}
}

func TestConvert(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	font := writeTestFont(t, dir)
	pfa := filepath.Join(dir, "test.pfa")
	pfb := filepath.Join(dir, "back.pfb")

	err := runConvert(ctx, []string{font, pfa})
	if err != nil {
		t.Fatal(err)
	}
	if t1file.IsPFB(readFile(t, pfa)) {
		t.Error("output is not in PFA format")
	}

	err = runConvert(ctx, []string{pfa, pfb})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(readFile(t, font), readFile(t, pfb)); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}

	err = runConvert(ctx, []string{"--reencrypt", "--to", "pfb", font, pfb})
	if err != nil {
		t.Fatal(err)
	}
	f, err := t1file.Read(bytes.NewReader(readFile(t, pfb)))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(testPrivate, string(f.Decrypt())); d != "" {
		t.Errorf("re-encryption failed (-want +got):\n%s", d)
	}

	// the font file stream for PDF omits the standard trailer
	raw := filepath.Join(dir, "test.bin")
	err = runConvert(ctx, []string{"--to", "pdf", font, raw})
	if err != nil {
		t.Fatal(err)
	}
	orig, err := t1file.Read(bytes.NewReader(readFile(t, font)))
	if err != nil {
		t.Fatal(err)
	}
	want := append(append([]byte{}, orig.Clear...), orig.Private...)
	if d := cmp.Diff(want, readFile(t, raw)); d != "" {
		t.Errorf("embedded font mismatch (-want +got):\n%s", d)
	}

	err = runConvert(ctx, []string{"--to", "otf", font, pfb})
	if err == nil {
		t.Error("invalid format accepted")
	}
}

func TestFontSource(t *testing.T) {
	ctx := context.Background()
	font := writeTestFont(t, t.TempDir())

	src := &fontSource{
		useKpse: true,
		r: kpse.ResolverFunc(func(_ context.Context, name string, class kpse.FormatClass) (string, error) {
			if name == "test" && class == kpse.Type1Font {
				return font, nil
			}
			return "", &kpse.NotFoundError{Name: name, Class: class}
		}),
	}

	f, err := src.read(ctx, "test")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(testPrivate, string(f.Decrypt())); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	_, err = src.read(ctx, "other")
	if !errors.Is(err, kpse.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUsage(t *testing.T) {
	ctx := context.Background()
	if err := runDecode(ctx, []string{"a", "b", "c"}); !errors.Is(err, errUsage) {
		t.Errorf("decode: expected errUsage, got %v", err)
	}
	if err := runConvert(ctx, []string{"a"}); !errors.Is(err, errUsage) {
		t.Errorf("convert: expected errUsage, got %v", err)
	}
	if err := runFind(ctx, nil); !errors.Is(err, errUsage) {
		t.Errorf("find: expected errUsage, got %v", err)
	}
	if err := runFind(ctx, []string{"--format", "tex", "x"}); err == nil {
		t.Error("find: unknown format class accepted")
	}
}
