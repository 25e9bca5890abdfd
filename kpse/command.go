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

package kpse

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Command is a Resolver which runs the kpsewhich program.
type Command struct {
	// Path is the program to run.  If this is empty, "kpsewhich" is
	// looked up in the search path.
	Path string

	// Args are extra arguments, placed before the arguments added by
	// Find.
	Args []string

	// ProgName, if set, is passed to kpsewhich using the -progname
	// option.  This selects the program specific search paths of the
	// TeX installation.
	ProgName string

	// Env, if non-nil, is the environment of the kpsewhich process.
	Env []string
}

// Find implements the [Resolver] interface.
func (c *Command) Find(ctx context.Context, name string, class FormatClass) (string, error) {
	if _, ok := formatNames[class]; !ok {
		return "", fmt.Errorf("kpsewhich %q: invalid format class %d", name, int(class))
	}

	path := c.Path
	if path == "" {
		path = "kpsewhich"
	}
	args := append([]string{}, c.Args...)
	if c.ProgName != "" {
		args = append(args, "-progname="+c.ProgName)
	}
	args = append(args, "-format="+class.String(), name)

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Env = c.Env
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()

	res := strings.TrimSpace(string(out))
	if i := strings.IndexByte(res, '\n'); i >= 0 {
		res = res[:i]
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 && res == "" && ctx.Err() == nil {
		// kpsewhich exits with status 1 if the file is not found
		return "", &NotFoundError{Name: name, Class: class}
	} else if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("kpsewhich %q: %w: %s", name, err, msg)
		}
		return "", fmt.Errorf("kpsewhich %q: %w", name, err)
	}
	if res == "" {
		return "", &NotFoundError{Name: name, Class: class}
	}

	return filepath.Abs(res)
}
