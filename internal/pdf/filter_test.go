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
	"compress/zlib"
	"io"
	"strings"
	"testing"
)

func TestFlateStream(t *testing.T) {
	data := []byte(strings.Repeat("0 0 10 10 re\nf\n", 100))
	stm, err := FlateStream(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(stm.Data) >= len(data) {
		t.Errorf("no compression: %d >= %d bytes", len(stm.Data), len(data))
	}
	if stm.Dict["Filter"] != Name("FlateDecode") {
		t.Errorf("filter %v", stm.Dict["Filter"])
	}

	zr, err := zlib.NewReader(bytes.NewReader(stm.Data))
	if err != nil {
		t.Fatal(err)
	}
	back, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, data) {
		t.Error("round trip changed the data")
	}

	buf := &bytes.Buffer{}
	if err := stm.PDF(buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("<<\n/Filter /FlateDecode\n/Length ")) {
		t.Errorf("unexpected stream dictionary:\n%.40q", buf.String())
	}
}
