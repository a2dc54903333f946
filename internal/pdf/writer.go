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
	"errors"
	"fmt"
	"io"
)

// Writer writes a PDF file.
type Writer struct {
	w       *posWriter
	xref    map[int]*xRefEntry
	nextRef int
}

type xRefEntry struct {
	Pos        int64
	Generation uint16
}

var (
	errClosed         = errors.New("PDF writer is closed")
	errMissingCatalog = errors.New("missing /Catalog")
)

// NewWriter prepares a PDF file for writing.
// The file uses PDF version 1.4.
func NewWriter(w io.Writer) (*Writer, error) {
	pdf := &Writer{
		w:       &posWriter{w: w},
		nextRef: 1,
		xref:    make(map[int]*xRefEntry),
	}
	pdf.xref[0] = &xRefEntry{
		Pos:        -1,
		Generation: 65535,
	}

	_, err := io.WriteString(pdf.w, "%PDF-1.4\n%\x80\x80\x80\x80\n")
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() *Reference {
	res := &Reference{Number: pdf.nextRef}
	pdf.nextRef++
	return res
}

// WriteIndirect writes an object to the PDF file, as an indirect object.  If
// ref is nil, a new object number is allocated.  The returned reference can
// be used to refer to this object from other parts of the file.
func (pdf *Writer) WriteIndirect(obj Object, ref *Reference) (*Reference, error) {
	if pdf.w == nil {
		return nil, errClosed
	}
	if ref == nil {
		ref = pdf.Alloc()
	} else if _, seen := pdf.xref[ref.Number]; seen {
		return nil, fmt.Errorf("object %d already written", ref.Number)
	}

	pos := pdf.w.pos
	if obj == nil {
		// missing objects are treated as null
		pos = -1
	} else {
		_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", ref.Number, ref.Generation)
		if err != nil {
			return nil, err
		}
		err = obj.PDF(pdf.w)
		if err != nil {
			return nil, err
		}
		_, err = io.WriteString(pdf.w, "\nendobj\n")
		if err != nil {
			return nil, err
		}
	}

	pdf.xref[ref.Number] = &xRefEntry{Pos: pos, Generation: ref.Generation}
	return ref, nil
}

// Close writes the cross-reference table and the trailer.  If the
// underlying io.Writer has a Close method, it is called.
func (pdf *Writer) Close(catalog *Reference) error {
	if pdf.w == nil {
		return errClosed
	}
	if catalog == nil {
		return errMissingCatalog
	}

	trailer := Dict{
		"Size": Integer(pdf.nextRef),
		"Root": catalog,
	}

	xRefPos := pdf.w.pos
	err := pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	base := pdf.w.w
	// make sure we don't accidentally write beyond the end of file
	pdf.w = nil
	if closer, ok := base.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (pdf *Writer) writeXRefTable(trailer Dict) error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	for i := 0; i < pdf.nextRef; i++ {
		entry := pdf.xref[i]
		if entry != nil && entry.Pos >= 0 {
			_, err = fmt.Fprintf(pdf.w, "%010d %05d n\r\n", entry.Pos, entry.Generation)
		} else {
			// free object
			_, err = io.WriteString(pdf.w, "0000000000 65535 f\r\n")
		}
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(pdf.w, "trailer\n")
	if err != nil {
		return err
	}
	return trailer.PDF(pdf.w)
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
