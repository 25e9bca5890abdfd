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

// Licensify adds the license header to all Go source files below the
// current directory.
//
// With --check, files are not modified; the program lists the files
// which lack the header and exits with status 1 if there are any.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

const firstLine = "// seehuhn.de/go/eexec - the Type 1 font eexec cipher\n"

const licenseBody = `//
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

`

func header(year int) string {
	return firstLine +
		fmt.Sprintf("// Copyright (C) %d  Jochen Voss <voss@seehuhn.de>\n", year) +
		licenseBody
}

// addHeader returns body with the header prepended.  The second return
// value is false if body already has a header, or if the file does not
// start with a package clause.
func addHeader(body []byte, header string) ([]byte, bool) {
	if bytes.HasPrefix(body, []byte(firstLine)) {
		return body, false
	}
	if !bytes.HasPrefix(body, []byte("package ")) && !bytes.HasPrefix(body, []byte("// ")) {
		return body, false
	}
	res := make([]byte, 0, len(header)+len(body))
	res = append(res, header...)
	res = append(res, body...)
	return res, true
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("licensify: ")

	check := pflag.Bool("check", false, "only report files without a license header")
	year := pflag.Int("year", time.Now().Year(), "copyright year for new headers")
	pflag.Parse()

	hdr := header(*year)
	missing := 0
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != "." && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		newBody, changed := addHeader(body, hdr)
		if !changed {
			if !bytes.HasPrefix(body, []byte(firstLine)) {
				fmt.Println("ATTENTION " + path)
			}
			return nil
		}

		missing++
		if *check {
			fmt.Println("missing header: " + path)
			return nil
		}
		fmt.Println("updating " + path)
		info, err := d.Info()
		if err != nil {
			return err
		}
		return os.WriteFile(path, newBody, info.Mode().Perm())
	})
	if err != nil {
		log.Fatal(err)
	}
	if *check && missing > 0 {
		os.Exit(1)
	}
}
