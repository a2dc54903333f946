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

package pdf

import (
	"bytes"
	"errors"
	"testing"
)

func format(obj Object) string {
	if obj == nil {
		return "null"
	}
	buf := &bytes.Buffer{}
	err := obj.PDF(buf)
	if err != nil {
		return "error: " + err.Error()
	}
	return buf.String()
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Integer(-7), "-7"},
		{Real(1), "1."},
		{Real(0.25), "0.25"},
		{Name("Type"), "/Type"},
		{Name("A B#"), "/A#20B#23"},
		{String("sRGB"), "(sRGB)"},
		{String("a(b)\\c\r"), `(a\(b\)\\c\r)`},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Dict{"B": Integer(2), "A": Integer(1), "C": nil}, "<<\n/A 1\n/B 2\n>>"},
		{Dict(nil), "null"},
		{&Reference{Number: 12}, "12 0 R"},
		{(*Reference)(nil), "null"},
		{Rectangle(0, 0, 595, 842.5), "[0. 0. 595. 842.5]"},
		{&Stream{Data: []byte("abc")}, "<<\n/Length 3\n>>\nstream\nabc\nendstream"},
	}
	for _, test := range cases {
		out := format(test.in)
		if out != test.out {
			t.Errorf("wrongly formatted, expected %q but got %q",
				test.out, out)
		}
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestWriteErrors(t *testing.T) {
	objs := []Object{
		Integer(1),
		Name("X"),
		Array{Integer(1)},
		Dict{"A": Integer(1)},
		&Stream{Data: []byte("x")},
	}
	for _, obj := range objs {
		if err := obj.PDF(failWriter{}); !errors.Is(err, errWrite) {
			t.Errorf("%T: error %v not passed on", obj, err)
		}
	}
}
