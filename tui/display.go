// Package tui renders the key ticker and the modifier bank in a terminal.
package tui

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"KeyTicker/ticker"
)

const (
	tickerRow   = 1
	modifierRow = 3
	leftMargin  = 2
	capGap      = 1
)

var (
	capStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray).Bold(true)
	activeStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGreen).Bold(true)
	inactiveStyle = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
)

// Display draws ticker.State on a tcell screen.
type Display struct {
	screen tcell.Screen

	mu    sync.Mutex
	state ticker.State
}

// New prepares a display on screen. A nil screen uses the real terminal.
func New(screen tcell.Screen) (*Display, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("open terminal screen: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	screen.HideCursor()
	return &Display{screen: screen, state: ticker.NewState()}, nil
}

// Render redraws the screen for s.
func (d *Display) Render(s ticker.State) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = s
	d.drawLocked()
}

func (d *Display) drawLocked() {
	d.screen.Clear()

	x := leftMargin
	for _, tok := range d.state.Tickers {
		x = drawCap(d.screen, x, tickerRow, tok, capStyle) + capGap
	}

	x = leftMargin
	for _, g := range d.state.Modifiers {
		style := inactiveStyle
		if g.Active {
			style = activeStyle
		}
		x = drawCap(d.screen, x, modifierRow, g.Title, style) + capGap
	}
	d.screen.Show()
}

// drawCap writes " label " at x,y and returns the column after it. Wide
// runes take two columns.
func drawCap(s tcell.Screen, x, y int, label string, style tcell.Style) int {
	s.SetContent(x, y, ' ', nil, style)
	x++
	for _, r := range label {
		if r < ' ' || r == 0x7f {
			r = '?'
		}
		s.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	s.SetContent(x, y, ' ', nil, style)
	return x + 1
}

// Run handles terminal events until ctx is done or the user presses Ctrl+Q.
// It returns nil in both cases.
func (d *Display) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go d.screen.ChannelEvents(events, quit)
	defer close(quit)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				d.screen.Sync()
				d.mu.Lock()
				d.drawLocked()
				d.mu.Unlock()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlQ {
					return nil
				}
			}
		}
	}
}

// Close restores the terminal.
func (d *Display) Close() {
	d.screen.Fini()
}
