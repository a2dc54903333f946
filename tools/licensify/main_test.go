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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLicensify(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.go":          "package a\n",
		"b.go":          header + "package b\n",
		"sub/c.go":      "// Package c does things.\npackage c\n",
		"sub/d.go":      "// Copyright somebody else\npackage d\n",
		"_skip/e.go":    "package e\n",
		"notes.txt":     "package notes\n",
		".hidden/f.go":  "package f\n",
		"sub/deep/g.go": "package g\n",
	}
	for name, body := range files {
		fname := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(fname), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(fname, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	out := &bytes.Buffer{}
	err := licensify(os.DirFS(dir), dir, out)
	if err != nil {
		t.Fatal(err)
	}

	for name, body := range files {
		got, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		updated := name == "a.go" || name == "sub/c.go" || name == "sub/deep/g.go"
		want := body
		if updated {
			want = header + body
		}
		if string(got) != want {
			t.Errorf("%s: wrong contents after update:\n%s", name, got)
		}
	}

	if !strings.Contains(out.String(), "ATTENTION sub/d.go") {
		t.Errorf("foreign header not reported:\n%s", out)
	}
}
