// Package main wires the keyboard feed, the display engine and the window
// host together. AppManager owns the only mutable copy of the display
// state.
//
// Maintenance notes:
//   - Key notifications are handled on the feed subscription goroutine, one
//     at a time and in delivery order. HandleEvent is the only writer of
//     AppManager.state; renderers receive immutable ticker.State values.
//   - Window commands go through cmdCh and are executed by commandLoop so the
//     tray, the close button and the hotkey never race each other.
package main

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"KeyTicker/config"
	"KeyTicker/control"
	"KeyTicker/feed"
	"KeyTicker/ticker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clickDuration = 25 * time.Millisecond
	clickFreq     = 1200
)

// Renderer is a display that projects the engine state.
type Renderer interface {
	Render(ticker.State)
}

// Window is the host window the commands act on.
type Window interface {
	Show()
	Hide()
	Close()
}

// AppManager is the main application struct, holding all state.
type AppManager struct {
	stateMu   sync.RWMutex
	state     ticker.State
	renderers []Renderer

	sub   *feed.Subscription
	subMu sync.Mutex

	window  Window
	visible atomic.Bool
	quit    func()

	cmdCh     chan control.Command
	cmdCtx    context.Context
	cmdCancel context.CancelFunc

	logLevel    *slog.LevelVar
	clickSound  atomic.Bool
	audioReady  bool
	speakerLock sync.Mutex
}

// NewAppManager creates a new application manager.
func NewAppManager(cfg config.Config, logLevel *slog.LevelVar) *AppManager {
	if logLevel == nil {
		logLevel = new(slog.LevelVar)
	}
	a := &AppManager{
		state:    ticker.NewState(),
		logLevel: logLevel,
		quit:     func() {},
	}
	a.visible.Store(true)
	a.ApplyConfig(cfg)

	a.cmdCh = make(chan control.Command, 64)
	a.cmdCtx, a.cmdCancel = context.WithCancel(context.Background())
	go a.commandLoop()
	return a
}

// ApplyConfig applies the settings that may change while running.
func (a *AppManager) ApplyConfig(cfg config.Config) {
	a.logLevel.Set(cfg.Level())
	if cfg.ClickSound && !a.initAudio() {
		slog.Warn("click sound requested but audio is unavailable")
	}
	a.clickSound.Store(cfg.ClickSound)
}

func (a *AppManager) initAudio() bool {
	a.speakerLock.Lock()
	defer a.speakerLock.Unlock()
	if a.audioReady {
		return true
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		slog.Warn("audio disabled: failed to initialize speaker", "error", err)
		return false
	}
	a.audioReady = true
	return true
}

// PlayClick plays a short tone if the click sound is enabled.
func (a *AppManager) PlayClick() {
	if !a.clickSound.Load() {
		return
	}

	a.speakerLock.Lock()
	defer a.speakerLock.Unlock()
	if !a.audioReady {
		return
	}

	tone, err := generators.SineTone(sampleRate, clickFreq)
	if err != nil {
		slog.Warn("click tone unavailable", "error", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(clickDuration), tone))
}

// AddRenderer registers a display and draws the current state on it.
func (a *AppManager) AddRenderer(r Renderer) {
	a.stateMu.Lock()
	a.renderers = append(a.renderers, r)
	s := a.state
	a.stateMu.Unlock()
	r.Render(s)
}

// SetWindow sets the window commands act on, and the function that ends the
// session.
func (a *AppManager) SetWindow(w Window, quit func()) {
	a.window = w
	if quit != nil {
		a.quit = quit
	}
}

// State returns the current display state.
func (a *AppManager) State() ticker.State {
	a.stateMu.RLock()
	defer a.stateMu.RUnlock()
	return a.state
}

// HandleEvent applies one raw notification and re-renders when the display
// changed.
func (a *AppManager) HandleEvent(ev ticker.RawEvent) {
	a.stateMu.Lock()
	prev := a.state
	next, token, pushed := ticker.Advance(prev, ev)
	a.state = next
	renderers := a.renderers
	a.stateMu.Unlock()

	slog.Debug("key event", "subscription", a.subscriptionID(), "kind", ev.Kind, "code", ev.Code, "token", token)

	if pushed {
		a.PlayClick()
	}
	if next.Equal(prev) {
		return
	}
	for _, r := range renderers {
		r.Render(next)
	}
}

// Start subscribes to src. A feed that cannot start is a startup failure.
func (a *AppManager) Start(ctx context.Context, src feed.Source) error {
	sub, err := feed.Subscribe(ctx, src, a.HandleEvent)
	if err != nil {
		return err
	}
	a.subMu.Lock()
	a.sub = sub
	a.subMu.Unlock()
	go a.watchFeed(sub)
	return nil
}

// watchFeed ends the session when the source stops on its own, for example
// when the keyboard device is unplugged. Nothing can be shown after that.
func (a *AppManager) watchFeed(sub *feed.Subscription) {
	<-sub.Done()

	a.subMu.Lock()
	current := a.sub == sub
	a.subMu.Unlock()
	if !current {
		return
	}
	slog.Warn("key feed ended", "subscription", sub.ID())
	a.EnqueueCommand(control.Command{Type: control.CmdExit})
}

func (a *AppManager) subscriptionID() string {
	a.subMu.Lock()
	defer a.subMu.Unlock()
	if a.sub == nil {
		return ""
	}
	return a.sub.ID()
}

// Stop releases the feed subscription. The state is discarded with the
// manager; nothing is persisted.
func (a *AppManager) Stop() {
	a.subMu.Lock()
	sub := a.sub
	a.sub = nil
	a.subMu.Unlock()
	if sub == nil {
		return
	}
	if err := sub.Unsubscribe(); err != nil {
		slog.Warn("feed stop failed", "error", err)
	}
}

// EnqueueCommand posts a command to the internal command loop.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	// Avoid blocking the UI indefinitely when the loop is busy.
	select {
	case a.cmdCh <- cmd:
	case <-time.After(150 * time.Millisecond):
		slog.Warn("EnqueueCommand timeout: dropping command", "command", cmd.Type)
	}
}

// ToggleWindow hides a visible window and shows a hidden one.
func (a *AppManager) ToggleWindow() {
	if a.visible.Load() {
		a.EnqueueCommand(control.Command{Type: control.CmdHideWindow})
	} else {
		a.EnqueueCommand(control.Command{Type: control.CmdShowWindow})
	}
}

func (a *AppManager) commandLoop() {
	for {
		select {
		case <-a.cmdCtx.Done():
			return
		case cmd := <-a.cmdCh:
			a.execute(cmd)
			// send reply if requested
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- nil:
				default:
				}
			}
		}
	}
}

func (a *AppManager) execute(cmd control.Command) {
	slog.Debug("window command", "command", cmd.Type)
	switch cmd.Type {
	case control.CmdShowWindow:
		if a.window != nil {
			a.window.Show()
		}
		a.visible.Store(true)
	case control.CmdHideWindow:
		if a.window != nil {
			a.window.Hide()
		}
		a.visible.Store(false)
	case control.CmdCloseWindow:
		a.Stop()
		if a.window != nil {
			a.window.Close()
		}
		a.visible.Store(false)
		a.quit()
	case control.CmdExit:
		a.Stop()
		a.quit()
	}
}

// Shutdown stops the feed and the command loop.
func (a *AppManager) Shutdown() {
	a.Stop()
	if a.cmdCancel != nil {
		a.cmdCancel()
	}
}
