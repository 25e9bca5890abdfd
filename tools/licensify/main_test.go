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
	"strings"
	"testing"
)

func TestAddHeader(t *testing.T) {
	hdr := header(2026)
	if !strings.Contains(hdr, "Copyright (C) 2026  Jochen Voss") {
		t.Fatalf("wrong header:\n%s", hdr)
	}

	body := []byte("package eexec\n")
	res, changed := addHeader(body, hdr)
	if !changed {
		t.Fatal("header not added")
	}
	if string(res) != hdr+"package eexec\n" {
		t.Errorf("wrong result:\n%s", res)
	}

	_, changed = addHeader(res, hdr)
	if changed {
		t.Error("header added twice")
	}

	_, changed = addHeader([]byte("//go:build ignore\n"), hdr)
	if changed {
		t.Error("header added to file with build constraint")
	}
}
