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

package screen

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/dux/metric"
	"seehuhn.de/go/dux/render"
	"seehuhn.de/go/dux/script"
)

// Preview shows a text in the terminal and lets the user tune the metric
// model interactively.
//
// Keys:
//
//	Up, Down      select the previous or next attribute
//	Left, Right   decrease or increase the selected attribute by one step
//	PgUp, PgDn    show the previous or next page
//	Tab           toggle the debug overlay
//	Space         replace the text by a random one
//	+             append a random text
//	q, Esc        quit
//
// Random texts are shown on the status line and written to Echo.
type Preview struct {
	Screen  tcell.Screen
	Page    *metric.Page
	Text    script.Text
	Options render.Options

	// Attr is the attribute changed by the Left and Right keys.
	Attr metric.Attribute

	// Visible is the number of the page shown, starting from 0.
	Visible int

	// Rand is used to generate random text.
	Rand *rand.Rand

	// Fit makes the page follow the size of the terminal.  The number of
	// page units per cell is fixed by the page width at the first call to
	// Resize.  If Fit is false, the page size is never changed.
	Fit bool

	// Echo, if not nil, receives every random text, one per line.
	Echo io.Writer

	pages    int
	cellSize float64
	message  string
}

var (
	paperStyle  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
)

// Run initialises the screen and processes events until the user quits.
func (p *Preview) Run() error {
	err := p.Screen.Init()
	if err != nil {
		return err
	}
	defer p.Screen.Fini()

	p.Resize()
	p.Draw()
	for {
		switch ev := p.Screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			p.Screen.Sync()
			p.Resize()
			p.Draw()
		case *tcell.EventKey:
			if p.HandleKey(ev) {
				return nil
			}
			p.Draw()
		}
	}
}

// Resize adjusts the page dimensions to the current size of the screen,
// keeping one row for the status line.  Nothing is changed unless Fit is
// set.
func (p *Preview) Resize() {
	if !p.Fit {
		return
	}
	cols, rows := p.Screen.Size()
	if cols < 1 || rows < 2 {
		return
	}
	if p.cellSize <= 0 {
		p.cellSize = p.Page.Width / float64(cols)
		if !(p.cellSize > 0) {
			return
		}
	}
	p.Page.UpdateDimensions(float64(cols)*p.cellSize,
		float64(rows-1)*p.cellSize*CellAspect)
}

// Pages returns the number of pages found by the last call to Draw.
func (p *Preview) Pages() int {
	return p.pages
}

// Draw renders the visible page and the status line.
func (p *Preview) Draw() {
	s := p.Screen
	s.SetStyle(paperStyle)
	s.Clear()

	cols, rows := s.Size()
	if rows < 2 {
		s.Show()
		return
	}

	dev := New(s, p.Page, cols, rows-1)
	dev.Visible = p.Visible
	sess := render.NewSession(p.Page, dev, &p.Options)
	sess.Text(p.Text)
	p.pages = dev.Page() + 1
	if p.Visible >= p.pages {
		p.Visible = p.pages - 1
		p.Draw()
		return
	}

	status := fmt.Sprintf(" page %d/%d  %s = %.4g  ",
		p.Visible+1, p.pages, p.Attr, p.Page.Attribute(p.Attr))
	if p.message != "" {
		status += p.message
	} else {
		status += "[arrows] tune  [tab] debug  [space] random  [q] quit"
	}
	col := 0
	for _, r := range status {
		if col >= cols {
			break
		}
		s.SetContent(col, rows-1, r, nil, statusStyle)
		col++
	}
	for ; col < cols; col++ {
		s.SetContent(col, rows-1, ' ', nil, statusStyle)
	}

	s.Show()
}

// HandleKey applies the action bound to ev.
// The return value indicates whether the preview should be closed.
func (p *Preview) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		p.Attr = p.Attr.Prev()
	case tcell.KeyDown:
		p.Attr = p.Attr.Next()
	case tcell.KeyLeft:
		p.Page.ChangeAttribute(p.Attr, -1)
	case tcell.KeyRight:
		p.Page.ChangeAttribute(p.Attr, 1)
	case tcell.KeyPgUp:
		if p.Visible > 0 {
			p.Visible--
		}
	case tcell.KeyPgDn:
		if p.Visible < p.pages-1 {
			p.Visible++
		}
	case tcell.KeyTab:
		p.Options.Debug = !p.Options.Debug
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			p.Text = script.RandomText(p.rand())
			p.Visible = 0
			p.echo(p.Text)
		case '+':
			more := script.RandomText(p.rand())
			p.Text = append(p.Text, more...)
			p.echo(more)
		}
	}
	return false
}

func (p *Preview) echo(t script.Text) {
	s := t.String()
	if p.Echo != nil {
		fmt.Fprintln(p.Echo, s)
	}
	p.message = strings.ReplaceAll(s, "\n", " / ")
}

func (p *Preview) rand() *rand.Rand {
	if p.Rand == nil {
		p.Rand = rand.New(rand.NewSource(1))
	}
	return p.Rand
}
