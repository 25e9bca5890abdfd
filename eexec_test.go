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
	"bytes"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKnownVectors(t *testing.T) {
	type testCase struct {
		cipher []byte
		seed   uint16
		skip   int
		plain  []byte
	}
	cases := []testCase{
		{ // eight zero bytes, encrypted with the eexec key
			cipher: []byte{0xd9, 0xd6, 0x6f, 0x63, 0x5f, 0xf8, 0x5a, 0x52},
			seed:   EexecKey,
			plain:  make([]byte, 8),
		},
		{
			cipher: []byte{0xf6, 0x68, 0x48, 0x11, 0x7f, 0x47, 0x79, 0x6e},
			seed:   EexecKey,
			plain:  []byte("/Private"),
		},
		{
			cipher: []byte{
				0xd9, 0xd6, 0x6f, 0x63, 0x3b, 0x84, 0x6a, 0x98,
				0x9b, 0x99, 0x74, 0xb0, 0x17, 0x9f, 0xc6, 0xcc,
			},
			seed:  EexecKey,
			skip:  4,
			plain: []byte("dup /Private"),
		},
		{
			cipher: []byte{0x10, 0xbf, 0x31, 0x70, 0x9a, 0xbf, 0x2f, 0x06},
			seed:   CharStringKey,
			skip:   4,
			plain:  []byte("hsbw"),
		},
	}
	for i, c := range cases {
		plain := Decode(c.cipher, c.seed, c.skip)
		if d := cmp.Diff(c.plain, plain); d != "" {
			t.Errorf("%d: decode mismatch (-want +got):\n%s", i, d)
		}

		prefix := make([]byte, c.skip)
		cipher := Encode(c.plain, c.seed, prefix)
		if d := cmp.Diff(c.cipher, cipher); d != "" {
			t.Errorf("%d: encode mismatch (-want +got):\n%s", i, d)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, seed := range []uint16{0, 1, CharStringKey, EexecKey, 65535} {
		for _, prefixLen := range []int{0, 1, 4, 17} {
			for _, dataLen := range []int{0, 1, 2, 100, 1000} {
				prefix := make([]byte, prefixLen)
				rng.Read(prefix)
				data := make([]byte, dataLen)
				rng.Read(data)

				cipher := Encode(data, seed, prefix)
				if len(cipher) != prefixLen+dataLen {
					t.Fatalf("wrong length: %d != %d", len(cipher), prefixLen+dataLen)
				}
				got := Decode(cipher, seed, prefixLen)
				if !bytes.Equal(got, data) {
					t.Errorf("seed=%d prefix=%d data=%d: round trip failed",
						seed, prefixLen, dataLen)
				}
			}
		}
	}
}

func TestAllSeeds(t *testing.T) {
	data := []byte("currentdict end\ncurrentfile closefile\n")
	prefix := []byte{0xde, 0xad, 0xbe, 0xef}
	for s := 0; s < 65536; s++ {
		seed := uint16(s)
		got := Decode(Encode(data, seed, prefix), seed, len(prefix))
		if !bytes.Equal(got, data) {
			t.Fatalf("seed %d: round trip failed", seed)
		}
	}
}

func TestEmpty(t *testing.T) {
	out := Decode(nil, EexecKey, 0)
	if out == nil || len(out) != 0 {
		t.Errorf("Decode(nil) = %v", out)
	}
	out = Encode(nil, EexecKey, nil)
	if out == nil || len(out) != 0 {
		t.Errorf("Encode(nil, nil) = %v", out)
	}
}

func TestSkip(t *testing.T) {
	cipher := []byte("this is not really encrypted, but it does not matter")
	full := Decode(cipher, EexecKey, 0)
	if len(full) != len(cipher) {
		t.Fatalf("wrong length: %d != %d", len(full), len(cipher))
	}
	for n := 0; n <= len(cipher); n++ {
		got := Decode(cipher, EexecKey, n)
		if d := cmp.Diff(full[n:], got); d != "" {
			t.Errorf("skip=%d: (-want +got):\n%s", n, d)
		}
	}

	// out of range values are clamped
	if d := cmp.Diff(full, Decode(cipher, EexecKey, -3)); d != "" {
		t.Errorf("negative skip: (-want +got):\n%s", d)
	}
	got := Decode(cipher, EexecKey, len(cipher)+1)
	if got == nil || len(got) != 0 {
		t.Errorf("large skip: got %v", got)
	}
}

func TestDeterministic(t *testing.T) {
	data := []byte("/CharStrings 1 dict dup begin")
	prefix := []byte{1, 2, 3, 4}

	a := Encode(data, EexecKey, prefix)
	b := Encode(data, EexecKey, prefix)
	if !bytes.Equal(a, b) {
		t.Error("Encode is not deterministic")
	}
	if !bytes.Equal(Decode(a, EexecKey, 4), Decode(b, EexecKey, 4)) {
		t.Error("Decode is not deterministic")
	}
}

func TestNoStateLeak(t *testing.T) {
	x := []byte{0x10, 0x20, 0x30, 0x40, 0x50}
	y := []byte{0xf0, 0xe0, 0xd0}

	wantY := Decode(y, CharStringKey, 0)
	_ = Decode(x, CharStringKey, 0)
	gotY := Decode(y, CharStringKey, 0)
	if !bytes.Equal(wantY, gotY) {
		t.Error("result depends on an earlier call")
	}
}

func TestInputUnchanged(t *testing.T) {
	data := []byte("abc")
	prefix := []byte{9, 9, 9, 9}
	cipher := Encode(data, EexecKey, prefix)
	saved := append([]byte(nil), cipher...)

	Decode(cipher, EexecKey, 4)
	if !bytes.Equal(data, []byte("abc")) || !bytes.Equal(prefix, []byte{9, 9, 9, 9}) {
		t.Error("Encode modified its input")
	}
	if !bytes.Equal(cipher, saved) {
		t.Error("Decode modified its input")
	}
}

// TestCipherFeedback checks that the register is driven by the encrypted
// bytes.  A cipher which feeds back the clear text agrees on the first
// byte and then diverges.
func TestCipherFeedback(t *testing.T) {
	plain := []byte{0x00, 0x00, 0x00}
	cipher := Encode(plain, EexecKey, nil)

	r := uint16(EexecKey)
	var wrong []byte
	for _, p := range plain {
		c := p ^ byte(r>>8)
		wrong = append(wrong, c)
		r = (uint16(p)+r)*c1 + c2
	}

	if cipher[0] != wrong[0] {
		t.Fatal("first byte should not depend on the feedback")
	}
	if bytes.Equal(cipher, wrong) {
		t.Error("clear text feedback gives the same result")
	}
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte(""), uint16(EexecKey), []byte{})
	f.Add([]byte("hello"), uint16(CharStringKey), []byte{1, 2, 3, 4})
	f.Add([]byte{0, 0, 0}, uint16(0), []byte{0xff})

	f.Fuzz(func(t *testing.T, data []byte, seed uint16, prefix []byte) {
		cipher := Encode(data, seed, prefix)
		if len(cipher) != len(prefix)+len(data) {
			t.Fatalf("wrong length: %d != %d", len(cipher), len(prefix)+len(data))
		}
		got := Decode(cipher, seed, len(prefix))
		if !bytes.Equal(got, data) {
			t.Error("round trip failed")
		}
	})
}

func BenchmarkDecode(b *testing.B) {
	cipher := make([]byte, 64*1024)
	b.SetBytes(int64(len(cipher)))
	for i := 0; i < b.N; i++ {
		Decode(cipher, EexecKey, DefaultLenIV)
	}
}
