// seehuhn.de/go/dux - glyph geometry and page layout for the dux script
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

// Licensify adds the GPL header to all Go source files below the current
// directory which do not have one yet.
package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const header = `// seehuhn.de/go/dux - glyph geometry and page layout for the dux script
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

`

func main() {
	err := licensify(os.DirFS("."), ".", os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

// licensify walks the tree below dir.  Directories starting with "_" or
// "." are skipped, as the go tool does.
func licensify(fsys fs.FS, dir string, w io.Writer) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != "." && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		switch needsHeader(body) {
		case headerPresent:
			return nil
		case headerUnknown:
			fmt.Fprintln(w, "ATTENTION", path)
			return nil
		}

		fmt.Fprintln(w, "updating", path)
		return os.WriteFile(filepath.Join(dir, path), append([]byte(header), body...), 0o644)
	})
}

type headerState int

const (
	headerMissing headerState = iota
	headerPresent
	headerUnknown
)

// needsHeader classifies the start of a source file.  Files starting with
// some other comment are reported, since this may be a different licence.
func needsHeader(body []byte) headerState {
	switch {
	case bytes.HasPrefix(body, []byte(header)):
		return headerPresent
	case bytes.HasPrefix(body, []byte("package ")),
		bytes.HasPrefix(body, []byte("// Package ")):
		return headerMissing
	default:
		return headerUnknown
	}
}
