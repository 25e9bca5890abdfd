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

// Package kpse describes the services a TeX installation provides to
// font handling code: locating files by name and format class, and
// writing subsets of Type 1 fonts.
//
// The package does not search for files itself.  The [Command] resolver
// delegates the search to the kpsewhich program.
package kpse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// FormatClass identifies the kind of file to look up.
type FormatClass int

// These are the format classes which are used for fonts and
// PostScript output.
const (
	Type1Font FormatClass = iota + 1
	VirtualFont
	AFM
	TFM
	FontMap
	Picture
	PostScriptHeader
	DvipsConfig
)

var formatNames = map[FormatClass]string{
	Type1Font:        "type1 fonts",
	VirtualFont:      "vf",
	AFM:              "afm",
	TFM:              "tfm",
	FontMap:          "map",
	Picture:          "graphic/figure",
	PostScriptHeader: "PostScript header",
	DvipsConfig:      "dvips config",
}

func (c FormatClass) String() string {
	if name, ok := formatNames[c]; ok {
		return name
	}
	return fmt.Sprintf("FormatClass(%d)", int(c))
}

// ParseFormatClass returns the format class with the given kpsewhich
// name.  The comparison ignores case.
func ParseFormatClass(name string) (FormatClass, error) {
	for c, n := range formatNames {
		if strings.EqualFold(n, name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown format class %q (known classes: %s)",
		name, strings.Join(FormatNames(), ", "))
}

// FormatNames returns the names of all format classes, in alphabetical
// order.
func FormatNames() []string {
	names := maps.Values(formatNames)
	slices.Sort(names)
	return names
}

// ErrNotFound is returned (possibly wrapped) by a Resolver if a file does
// not exist.
var ErrNotFound = errors.New("file not found")

// Resolver locates files.
type Resolver interface {
	// Find returns the absolute path of the file with the given name and
	// format class.
	Find(ctx context.Context, name string, class FormatClass) (string, error)
}

// ResolverFunc is an adapter to allow the use of ordinary functions as
// a Resolver.
type ResolverFunc func(ctx context.Context, name string, class FormatClass) (string, error)

// Find calls f(ctx, name, class).
func (f ResolverFunc) Find(ctx context.Context, name string, class FormatClass) (string, error) {
	return f(ctx, name, class)
}

// NotFoundError reports a file which could not be located.
type NotFoundError struct {
	Name  string
	Class FormatClass
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q: %s", err.Class, err.Name, ErrNotFound)
}

// Is allows errors.Is(err, ErrNotFound) to succeed.
func (err *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// SubsetWriter writes reduced versions of Type 1 fonts.
type SubsetWriter interface {
	// WriteSubset writes the font fontName to w, keeping only the glyphs
	// for the codes where keep is true.  The encoding of the font is read
	// from encodingFile.
	WriteSubset(w io.Writer, fontName, encodingFile string, keep *[256]bool) error
}

// SubsetWriterFunc is an adapter to allow the use of ordinary functions as
// a SubsetWriter.
type SubsetWriterFunc func(w io.Writer, fontName, encodingFile string, keep *[256]bool) error

// WriteSubset calls f(w, fontName, encodingFile, keep).
func (f SubsetWriterFunc) WriteSubset(w io.Writer, fontName, encodingFile string, keep *[256]bool) error {
	return f(w, fontName, encodingFile, keep)
}
