// Package ui renders the key ticker and the modifier bank in a small Fyne
// window and installs the tray menu.
package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"

	"KeyTicker/control"
	"KeyTicker/ticker"
)

// App is what the window needs from the application.
type App interface {
	EnqueueCommand(cmd control.Command)
}

// Overlay is the main window. It is a projection of ticker.State: Render
// redraws it from a state value and keeps nothing else.
type Overlay struct {
	window    fyne.Window
	tickerBox *fyne.Container
	tickers   []*Keycap
	modifiers []*Keycap
	closeBtn  *TappableContainer
	last      ticker.State
}

// CreateMainWindow builds the overlay window showing initial.
func CreateMainWindow(a App, fyneApp fyne.App, initial ticker.State) *Overlay {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = "KeyTicker"
	}
	w := fyneApp.NewWindow(title)

	o := &Overlay{window: w}
	o.tickerBox = container.New(layout.NewCustomPaddedHBoxLayout(KeycapSpacing))

	modBox := container.New(layout.NewCustomPaddedHBoxLayout(KeycapSpacing))
	for _, g := range initial.Modifiers {
		k := NewKeycap(g.Title, FontSizeMods, fyne.NewSize(ModifierWidth, ModifierHeight))
		o.modifiers = append(o.modifiers, k)
		modBox.Add(k.CanvasObject())
	}

	closeText := canvas.NewText("✕", TextColor)
	closeText.TextSize = FontSizeMods
	o.closeBtn = NewTappableContainer(closeText, func() {
		a.EnqueueCommand(control.Command{Type: control.CmdCloseWindow})
	})

	header := container.NewHBox(layout.NewSpacer(), o.closeBtn)
	content := container.NewVBox(
		header,
		container.NewCenter(o.tickerBox),
		container.NewCenter(modBox),
	)

	// The native close button only hides the overlay; the tray brings it back.
	w.SetCloseIntercept(func() {
		a.EnqueueCommand(control.Command{Type: control.CmdHideWindow})
	})

	w.SetContent(content)
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	w.SetFixedSize(true)

	o.apply(initial)
	return o
}

// Window returns the underlying Fyne window.
func (o *Overlay) Window() fyne.Window {
	return o.window
}

// Render schedules a redraw for s on the UI goroutine.
func (o *Overlay) Render(s ticker.State) {
	fyne.Do(func() {
		o.apply(s)
	})
}

func (o *Overlay) apply(s ticker.State) {
	o.applyTickers(s.Tickers)
	o.applyModifiers(s.Modifiers)
	o.last = s
}

func (o *Overlay) applyTickers(tokens []string) {
	for len(o.tickers) < len(tokens) {
		o.tickers = append(o.tickers, NewKeycap("", FontSize, fyne.NewSize(KeycapMinWidth, KeycapHeight)))
	}

	objects := make([]fyne.CanvasObject, 0, len(tokens))
	for i, tok := range tokens {
		k := o.tickers[i]
		if k.Text() != tok {
			k.label.Text = tok
			k.label.Refresh()
		}
		objects = append(objects, k.CanvasObject())
	}
	o.tickerBox.Objects = objects
	o.tickerBox.Refresh()
}

func (o *Overlay) applyModifiers(groups []*ticker.ModifierGroup) {
	for i, g := range groups {
		if i >= len(o.modifiers) {
			break
		}
		// Groups that did not change keep their pointer.
		if i < len(o.last.Modifiers) && o.last.Modifiers[i] == g {
			continue
		}
		o.modifiers[i].SetDimmed(!g.Active)
	}
}

// Show brings the window back on screen.
func (o *Overlay) Show() {
	fyne.Do(o.window.Show)
}

// Hide removes the window from the screen without ending the session.
func (o *Overlay) Hide() {
	fyne.Do(o.window.Hide)
}

// Close closes the window.
func (o *Overlay) Close() {
	fyne.Do(o.window.Close)
}

// InstallTray creates the tray icon and its menu from req. It returns false
// when the platform has no system tray.
func InstallTray(a App, fyneApp fyne.App, req control.TrayRequest, icon fyne.Resource) bool {
	desk, ok := fyneApp.(desktop.App)
	if !ok {
		return false
	}

	desk.SetSystemTrayMenu(trayMenu(a, req))
	if icon != nil {
		desk.SetSystemTrayIcon(icon)
	}
	return true
}

// trayMenu builds the menu for req. Entries with an unknown action are
// skipped; Exit is preceded by a separator.
func trayMenu(a App, req control.TrayRequest) *fyne.Menu {
	items := make([]*fyne.MenuItem, 0, len(req.Items)+1)
	for _, it := range req.Items {
		action, err := control.ParseAction(string(it.Action))
		if err != nil {
			slog.Warn("skipping tray menu entry", "label", it.Label, "error", err)
			continue
		}
		cmd := action.Command()
		mi := fyne.NewMenuItem(it.Label, func() {
			a.EnqueueCommand(cmd)
		})
		if action == control.ActionExit {
			mi.IsQuit = true
			items = append(items, fyne.NewMenuItemSeparator())
		}
		items = append(items, mi)
	}
	return fyne.NewMenu("", items...)
}
