//go:build linux || darwin || windows

// Package hotkeys registers the global shortcut that shows or hides the
// overlay window.
package hotkeys

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.design/x/hotkey"
)

// Binding is a parsed shortcut such as "ctrl+shift+k".
type Binding struct {
	Name string
	Mods []hotkey.Modifier
	Key  hotkey.Key
}

// ParseBinding parses a "+"-separated shortcut. The last part is the key,
// every other part a modifier.
func ParseBinding(s string) (Binding, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	if len(parts) < 2 {
		return Binding{}, fmt.Errorf("hotkey %q needs at least one modifier and a key", s)
	}

	b := Binding{Name: strings.Join(parts, "+")}
	for _, name := range parts[:len(parts)-1] {
		m, ok := modMap[strings.TrimSpace(name)]
		if !ok {
			return Binding{}, fmt.Errorf("unknown modifier: %q (available: ctrl, shift, alt, super)", name)
		}
		b.Mods = append(b.Mods, m)
	}

	k, ok := keyMap[strings.TrimSpace(parts[len(parts)-1])]
	if !ok {
		return Binding{}, fmt.Errorf("unknown key: %q", parts[len(parts)-1])
	}
	b.Key = k
	return b, nil
}

// Listen registers b globally and calls onPress on every key down until ctx
// is done. Registration failure is returned before Listen starts waiting.
func Listen(ctx context.Context, b Binding, onPress func()) error {
	hk := hotkey.New(b.Mods, b.Key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register hotkey: %w", err)
	}
	slog.Info("toggle hotkey registered", "hotkey", b.Name)

	go func() {
		defer func() {
			if err := hk.Unregister(); err != nil {
				slog.Warn("unregister hotkey failed", "error", err)
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case <-hk.Keydown():
				onPress()
			}
		}
	}()
	return nil
}

var keyMap = map[string]hotkey.Key{
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,
	"f1": hotkey.KeyF1, "f2": hotkey.KeyF2, "f3": hotkey.KeyF3, "f4": hotkey.KeyF4,
	"f5": hotkey.KeyF5, "f6": hotkey.KeyF6, "f7": hotkey.KeyF7, "f8": hotkey.KeyF8,
	"f9": hotkey.KeyF9, "f10": hotkey.KeyF10, "f11": hotkey.KeyF11, "f12": hotkey.KeyF12,
	"space":  hotkey.KeySpace,
	"return": hotkey.KeyReturn,
	"escape": hotkey.KeyEscape,
	"tab":    hotkey.KeyTab,
	"up":     hotkey.KeyUp,
	"down":   hotkey.KeyDown,
	"left":   hotkey.KeyLeft,
	"right":  hotkey.KeyRight,
}
