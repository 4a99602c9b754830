package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"KeyTicker/config"
	"KeyTicker/control"
	"KeyTicker/feed"
	"KeyTicker/hotkeys"
	"KeyTicker/i18n"
	"KeyTicker/tui"
	"KeyTicker/ui"
)

//go:embed assets/*
var content embed.FS

const appID = "io.github.keyticker"

func main() {
	cfgPath := flag.String("config", "", "path to the YAML config file")
	flag.Parse()

	level := new(slog.LevelVar)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*cfgPath, level); err != nil {
		slog.Error("keyticker stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfgPath string, level *slog.LevelVar) error {
	if cfgPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	level.Set(cfg.Level())
	i18n.Init(cfg.Lang)
	slog.Info("starting", "config", cfgPath, "source", cfg.Source, "display", cfg.Display, "lang", i18n.GetLang())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := NewAppManager(cfg, level)
	defer a.Shutdown()

	go func() {
		if err := config.Watch(ctx, cfgPath, a.ApplyConfig); err != nil {
			slog.Warn("config reload disabled", "error", err)
		}
	}()

	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	switch cfg.Display {
	case config.DisplayTerminal:
		return runTerminal(ctx, a, src)
	default:
		return runWindow(ctx, cfg, a, src)
	}
}

func newSource(cfg config.Config) (feed.Source, error) {
	switch cfg.Source {
	case config.SourceWebSocket:
		return feed.NewWebSocketSource(cfg.ListenAddr), nil
	case config.SourceEvdev:
		return feed.NewEvdevSource(cfg.Device), nil
	case config.SourceTerminal:
		return feed.NewTerminalSource(nil), nil
	}
	return nil, fmt.Errorf("%w: source %q", config.ErrInvalid, cfg.Source)
}

func runWindow(ctx context.Context, cfg config.Config, a *AppManager, src feed.Source) error {
	fyneApp := app.NewWithID(appID)
	fyneApp.Settings().SetTheme(ui.NewCustomTheme())

	iconPath := "assets/icon.png"
	var icon fyne.Resource
	if iconBytes, err := content.ReadFile(iconPath); err == nil {
		icon = fyne.NewStaticResource("icon.png", iconBytes)
		fyneApp.SetIcon(icon)
	} else {
		slog.Warn("failed to load icon", "error", err)
	}
	if cfg.TrayIcon != "" {
		if res, err := fyne.LoadResourceFromPath(cfg.TrayIcon); err == nil {
			icon = res
			iconPath = cfg.TrayIcon
		} else {
			slog.Warn("failed to load tray icon, using bundled icon", "path", cfg.TrayIcon, "error", err)
		}
	}

	overlay := ui.CreateMainWindow(a, fyneApp, a.State())
	a.SetWindow(overlay, func() { fyne.Do(fyneApp.Quit) })
	a.AddRenderer(overlay)

	req := control.TrayRequest{IconPath: iconPath, Items: control.DefaultTrayMenu(i18n.T)}
	if !ui.InstallTray(a, fyneApp, req, icon) {
		slog.Info("system tray not available")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	overlay.Window().SetOnClosed(cancel)

	if err := a.Start(ctx, src); err != nil {
		return err
	}
	logEndpoint(src)

	if cfg.ToggleHotkey != "" {
		if b, err := hotkeys.ParseBinding(cfg.ToggleHotkey); err != nil {
			slog.Warn("ignoring toggle hotkey", "error", err)
		} else if err := hotkeys.Listen(ctx, b, a.ToggleWindow); err != nil {
			slog.Warn("toggle hotkey unavailable", "hotkey", b.Name, "error", err)
		}
	}

	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()

	overlay.Window().ShowAndRun()
	return nil
}

func runTerminal(ctx context.Context, a *AppManager, src feed.Source) error {
	d, err := tui.New(nil)
	if err != nil {
		return err
	}
	defer d.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.SetWindow(nil, cancel)
	a.AddRenderer(d)

	if err := a.Start(ctx, src); err != nil {
		return err
	}
	logEndpoint(src)
	return d.Run(ctx)
}

// logEndpoint tells the user where the keyboard hook has to connect.
func logEndpoint(src feed.Source) {
	if ws, ok := src.(*feed.WebSocketSource); ok {
		slog.Info("waiting for keyboard hook", "url", ws.URL())
	}
}
