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
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/dux/device/canvas"
	"seehuhn.de/go/dux/device/pdf"
	"seehuhn.de/go/dux/device/raster"
	"seehuhn.de/go/dux/metric"
	"seehuhn.de/go/dux/render"
	"seehuhn.de/go/dux/script"
)

var renderCmd = &command{
	name: "render",
	args: "[file]",
	help: "render text to PNG images or to a PDF file",
	setup: func(fs *flag.FlagSet) func([]string) error {
		pf := addPageFlags(fs, "800x600")
		format := fs.String("format", "", "output `format`: png, gg or pdf (default: from the output file name)")
		out := fs.String("o", "out.png", "output `file`, \"-\" for standard output")
		scale := fs.Float64("scale", 1, "pixels per page unit, for image output")
		compress := fs.Bool("compress", true, "compress the page contents, for PDF output")
		title := fs.String("title", "", "document `title`, for PDF output")

		return func(args []string) error {
			text, err := pf.text(args)
			if err != nil {
				return err
			}
			p, err := pf.page()
			if err != nil {
				return err
			}
			job := &renderJob{
				page:     p,
				text:     text,
				opt:      &render.Options{Debug: pf.debug},
				format:   *format,
				out:      *out,
				scale:    *scale,
				compress: *compress,
				title:    *title,
			}
			return job.run()
		}
	},
}

// renderJob describes one invocation of the render command.
type renderJob struct {
	page   *metric.Page
	text   script.Text
	opt    *render.Options
	format string
	out    string
	scale  float64

	compress bool
	title    string
}

var errTerminal = errors.New("refusing to write binary data to a terminal")

func (job *renderJob) run() error {
	format := job.format
	if format == "" {
		format = "png"
		if strings.EqualFold(filepath.Ext(job.out), ".pdf") {
			format = "pdf"
		}
	}
	if !(job.scale > 0) {
		return fmt.Errorf("invalid scale %g", job.scale)
	}

	slog.Debug("rendering", "format", format, "output", job.out, "paragraphs", len(job.text))
	switch format {
	case "pdf":
		return job.writePDF()
	case "png":
		dev := raster.New(job.page, job.scale)
		render.NewSession(job.page, dev, job.opt).Text(job.text)
		return job.writeImages(len(dev.Pages), dev.WritePNG)
	case "gg":
		dev := canvas.New(job.page, job.scale)
		defer dev.Close()
		render.NewSession(job.page, dev, job.opt).Text(job.text)
		if dev.Err != nil {
			return dev.Err
		}
		return job.writeImages(dev.Pages(), dev.WritePNG)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func (job *renderJob) writePDF() error {
	var dev *pdf.Device
	var err error
	if job.out == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errTerminal
		}
		dev, err = pdf.New(os.Stdout, job.page)
	} else {
		dev, err = pdf.Create(job.out, job.page)
	}
	if err != nil {
		return err
	}
	dev.Compress = job.compress
	dev.Title = job.title
	render.NewSession(job.page, dev, job.opt).Text(job.text)
	n := dev.Pages()
	err = dev.Close()
	if err != nil {
		return err
	}
	slog.Info("wrote PDF", "file", job.out, "pages", n)
	return nil
}

// writeImages writes numPages images, one file per page.
func (job *renderJob) writeImages(numPages int, write func(w io.Writer, page int) error) error {
	if job.out == "-" {
		if numPages > 1 {
			return fmt.Errorf("%d pages cannot be written to standard output", numPages)
		}
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errTerminal
		}
		return write(os.Stdout, 0)
	}

	for i := range numPages {
		fname := pageFileName(job.out, i)
		err := writeFile(fname, func(w io.Writer) error { return write(w, i) })
		if err != nil {
			return err
		}
		slog.Info("wrote image", "file", fname, "page", i+1)
	}
	return nil
}

// pageFileName returns the name of the output file for the given page.
// The first page uses name unchanged, later pages get a numeric suffix,
// for example "out-2.png".
func pageFileName(name string, page int) string {
	if page == 0 {
		return name
	}
	ext := filepath.Ext(name)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(name, ext), page+1, ext)
}

func writeFile(fname string, write func(io.Writer) error) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = write(f)
	err2 := f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return err2
}
