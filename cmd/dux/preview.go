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
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"seehuhn.de/go/dux/device/screen"
	"seehuhn.de/go/dux/metric"
	"seehuhn.de/go/dux/render"
)

var previewCmd = &command{
	name: "preview",
	args: "[file]",
	help: "show text in the terminal and tune the metric model interactively",
	setup: func(fs *flag.FlagSet) func([]string) error {
		pf := addPageFlags(fs, "600x400")
		pin := fs.Bool("pin", false, "keep the page size given by -size when the terminal is resized")
		return func(args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.New("preview needs an interactive terminal")
			}
			text, err := pf.text(args)
			if err != nil {
				return err
			}
			p, err := pf.page()
			if err != nil {
				return err
			}
			s, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			echo := &bytes.Buffer{}
			prev := &screen.Preview{
				Screen:  s,
				Page:    p,
				Text:    text,
				Options: render.Options{Debug: pf.debug},
				Rand:    pf.rand(),
				Fit:     !*pin,
				Echo:    echo,
			}
			err = prev.Run()
			if err != nil {
				return err
			}

			// the random texts generated during the session
			_, err = echo.WriteTo(os.Stdout)
			if err != nil {
				return err
			}

			// print the final settings, so that they can be reused
			for _, a := range metric.Attributes {
				fmt.Printf("-set %s=%g ", a, p.Attribute(a))
			}
			fmt.Println()
			return nil
		}
	},
}

var randomCmd = &command{
	name: "random",
	args: "",
	help: "print a random text in dux notation",
	setup: func(fs *flag.FlagSet) func([]string) error {
		pf := &pageFlags{}
		fs.Int64Var(&pf.seed, "seed", 0, "random seed, 0 for a time based seed")
		ascii := fs.Bool("ascii", false, "use ASCII tone marks")
		return func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected arguments: %q", args)
			}
			pf.random = true
			text, err := pf.text(nil)
			if err != nil {
				return err
			}
			if *ascii {
				fmt.Println(text.ASCII())
			} else {
				fmt.Println(text.String())
			}
			return nil
		}
	},
}
