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

// Command dux lays out text in the dux script and renders it to PNG images,
// PDF files or the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"seehuhn.de/go/dux/internal/buildinfo"
	"seehuhn.de/go/dux/internal/profile"
)

// demoText is shown if no input file is given.
const demoText = "ga^-xu,y-ze~ xu,y-ye` li~"

type command struct {
	name  string
	args  string
	help  string
	setup func(fs *flag.FlagSet) func(args []string) error
}

var commands = []*command{
	renderCmd,
	previewCmd,
	randomCmd,
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "dux - lay out and render text in the dux script\n")
	fmt.Fprintf(w, "%s\n\n", buildinfo.Short("dux"))
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  dux <command> [options] [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.help)
	}
	fmt.Fprintf(w, "\nUse \"dux <command> -h\" for the options of a command.\n")
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  dux render -o out.png\n")
	fmt.Fprintf(w, "  dux render -format pdf -size 595x842 -o out.pdf text.dux\n")
	fmt.Fprintf(w, "  dux preview -set CharHeight=60 text.dux\n")
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}
	switch os.Args[1] {
	case "-h", "-help", "--help", "help":
		usage(os.Stdout)
		return
	case "-version", "--version", "version":
		fmt.Println(buildinfo.Short("dux"))
		return
	}

	err := run(os.Args[1], os.Args[2:])
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		fmt.Fprintln(os.Stderr, "dux:", err)
		os.Exit(1)
	}
}

func run(name string, args []string) error {
	var cmd *command
	for _, c := range commands {
		if c.name == name {
			cmd = c
			break
		}
	}
	if cmd == nil {
		usage(os.Stderr)
		return fmt.Errorf("unknown command %q", name)
	}

	fs := flag.NewFlagSet("dux "+cmd.name, flag.ContinueOnError)
	verbose := fs.Bool("v", false, "log debug messages")
	cpuprofile := fs.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := fs.String("memprofile", "", "write memory profile to `file`")
	action := cmd.setup(fs)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage:\n  dux %s [options] %s\n\n", cmd.name, cmd.args)
		fmt.Fprintf(out, "%s\n\nOptions:\n", cmd.help)
		fs.PrintDefaults()
	}
	err := fs.Parse(args)
	if err != nil {
		return err
	}

	setupLogging(*verbose)

	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	err = action(fs.Args())
	return errors.Join(err, stop())
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gg.SetLogger(logger)
}
