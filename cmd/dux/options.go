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
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"seehuhn.de/go/dux/metric"
	"seehuhn.de/go/dux/script"
)

// attrSetting is the argument of a -set or -tune flag.
type attrSetting struct {
	attr  metric.Attribute
	value float64
}

// attrList collects repeated -set or -tune flags.
type attrList []attrSetting

func (l *attrList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, s := range *l {
		parts[i] = fmt.Sprintf("%s=%g", s.attr, s.value)
	}
	return strings.Join(parts, ",")
}

func (l *attrList) Set(arg string) error {
	name, val, ok := strings.Cut(arg, "=")
	if !ok {
		return errors.New("expected Name=value")
	}
	a, err := metric.ParseAttribute(strings.TrimSpace(name))
	if err != nil {
		return err
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return err
	}
	*l = append(*l, attrSetting{attr: a, value: x})
	return nil
}

// pageFlags are the options shared by all commands which lay out text.
type pageFlags struct {
	size   string
	set    attrList
	tune   attrList
	debug  bool
	random bool
	seed   int64
}

func addPageFlags(fs *flag.FlagSet, defaultSize string) *pageFlags {
	pf := &pageFlags{}
	fs.StringVar(&pf.size, "size", defaultSize, "page size `WxH`, in page units")
	fs.Var(&pf.set, "set", "set an attribute, as `Name=value` (repeatable)")
	fs.Var(&pf.tune, "tune", "change an attribute by a number of steps, as `Name=steps` (repeatable)")
	fs.BoolVar(&pf.debug, "debug", false, "outline the page frame and the glyph cells")
	fs.BoolVar(&pf.random, "random", false, "lay out a random text instead of the input")
	fs.Int64Var(&pf.seed, "seed", 0, "seed for -random, 0 for a time based seed")
	return pf
}

// parseSize parses a page size of the form "800x600".
func parseSize(s string) (float64, float64, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid page size %q", s)
	}
	w, err1 := strconv.ParseFloat(ws, 64)
	h, err2 := strconv.ParseFloat(hs, 64)
	if err1 != nil || err2 != nil || !(w > 0 && h > 0) {
		return 0, 0, fmt.Errorf("invalid page size %q", s)
	}
	return w, h, nil
}

// page returns the metric model described by the flags.
// The -set flags are applied before the -tune flags.
func (pf *pageFlags) page() (*metric.Page, error) {
	w, h, err := parseSize(pf.size)
	if err != nil {
		return nil, err
	}
	p := metric.New(w, h)
	for _, s := range pf.set {
		p.SetAttribute(s.attr, s.value)
	}
	for _, s := range pf.tune {
		p.ChangeAttribute(s.attr, s.value)
	}

	slog.Debug("metric model",
		"width", p.Width, "height", p.Height,
		"long", p.LongStrokeLength(),
		"mid", p.MidStrokeLength(),
		"short", p.ShortStrokeLength(),
		"stroke", p.StrokeWidth())
	if p.Degenerate() {
		slog.Warn("degenerate metric model, some strokes have no area",
			"long", p.LongStrokeLength(), "stroke", p.StrokeWidth())
	}
	return p, nil
}

func (pf *pageFlags) rand() *rand.Rand {
	seed := pf.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	slog.Debug("random text", "seed", seed)
	return rand.New(rand.NewSource(seed))
}

// text returns the text to lay out.  The argument, if any, names the
// input file; "-" reads from standard input.
func (pf *pageFlags) text(args []string) (script.Text, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("too many arguments: %q", args[1:])
	}
	if pf.random {
		if len(args) > 0 {
			return nil, errors.New("-random does not take an input file")
		}
		return script.RandomText(pf.rand()), nil
	}
	if len(args) == 0 {
		return script.Parse(demoText)
	}

	fname := args[0]
	var body []byte
	var err error
	if fname == "-" {
		body, err = io.ReadAll(os.Stdin)
	} else {
		body, err = os.ReadFile(fname)
	}
	if err != nil {
		return nil, err
	}
	text, err := script.Parse(string(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	slog.Debug("parsed input", "file", fname, "paragraphs", len(text))
	return text, nil
}
