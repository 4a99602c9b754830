//go:build linux

package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/holoplot/go-evdev"

	"KeyTicker/ticker"
)

// evdev key states
const (
	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

// EvdevSource reads key presses and releases straight from a Linux input
// device. Reading usually requires root or membership of the input group.
type EvdevSource struct {
	path string

	mu      sync.Mutex
	dev     *evdev.InputDevice
	stopped bool
}

// NewEvdevSource returns a source for the device at path. An empty path
// selects the first device that looks like a keyboard.
func NewEvdevSource(path string) *EvdevSource {
	return &EvdevSource{path: path}
}

// Start implements Source.
func (s *EvdevSource) Start(ctx context.Context) (<-chan ticker.RawEvent, error) {
	path := s.path
	if path == "" {
		found, err := findKeyboardDevice()
		if err != nil {
			return nil, err
		}
		path = found
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keyboard device %s: %w (try adding the user to the 'input' group)", path, err)
	}
	name, _ := dev.Name()
	slog.Info("evdev feed opened", "device", path, "name", name)

	s.mu.Lock()
	s.dev = dev
	s.mu.Unlock()

	events := make(chan ticker.RawEvent, 100)
	go func() {
		defer close(events)
		tr := newKeyTranslator()
		for {
			ie, err := dev.ReadOne()
			if err != nil {
				if !s.isStopped() {
					slog.Error("evdev read failed", "device", path, "error", err)
				}
				return
			}
			if ie.Type != evdev.EV_KEY {
				continue
			}

			for _, ev := range tr.translate(ie.Code, ie.Value) {
				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return events, nil
}

// Stop implements Source. Closing the device unblocks the reader.
func (s *EvdevSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.dev == nil {
		s.stopped = true
		return nil
	}
	s.stopped = true
	return s.dev.Close()
}

func (s *EvdevSource) isStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// findKeyboardDevice returns the first input device whose name mentions a
// keyboard.
func findKeyboardDevice() (string, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return "", fmt.Errorf("list input devices: %w", err)
	}
	for _, p := range paths {
		name := strings.ToLower(p.Name)
		if strings.Contains(name, "keyboard") || strings.Contains(name, "kbd") {
			return p.Path, nil
		}
	}
	return "", errors.New("no keyboard input device found")
}

// keyTranslator turns kernel key events into notifications. It tracks the
// Control keys so that Control+letter also produces the control character a
// keyboard hook reports for the combination.
type keyTranslator struct {
	ctrlDown map[evdev.EvCode]bool
}

func newKeyTranslator() *keyTranslator {
	return &keyTranslator{ctrlDown: make(map[evdev.EvCode]bool)}
}

// translate returns the notifications for one EV_KEY event. value is 1 for
// a press, 2 for autorepeat and 0 for a release.
func (t *keyTranslator) translate(code evdev.EvCode, value int32) []ticker.RawEvent {
	var kind ticker.Kind
	switch value {
	case keyPressed, keyRepeated:
		kind = ticker.KeyPress
	case keyReleased:
		kind = ticker.KeyRelease
	default:
		return nil
	}

	if code == evdev.KEY_LEFTCTRL || code == evdev.KEY_RIGHTCTRL {
		if kind == ticker.KeyPress {
			t.ctrlDown[code] = true
		} else {
			delete(t.ctrlDown, code)
		}
	}

	out := []ticker.RawEvent{{Kind: kind, Code: keyName(code)}}
	if kind == ticker.KeyPress && len(t.ctrlDown) > 0 {
		if c, ok := controlChars[code]; ok {
			out = append(out, ticker.RawEvent{Kind: ticker.CharacterOnly, Code: string(c)})
		}
	}
	return out
}

// controlChars holds the character Control+key produces: 1-26 for the
// letters, 27-29 for the brackets and backslash.
var controlChars = map[evdev.EvCode]rune{
	evdev.KEY_LEFTBRACE:  27,
	evdev.KEY_BACKSLASH:  28,
	evdev.KEY_RIGHTBRACE: 29,
}

func init() {
	for code, name := range evdevKeys {
		if len(name) == 4 && strings.HasPrefix(name, "Key") {
			controlChars[code] = rune(name[3]-'A') + 1
		}
	}
}

// keyName converts a kernel key code to the identifier used by the
// keyboard hook. Codes without an entry keep their kernel name.
func keyName(code evdev.EvCode) string {
	if name, ok := evdevKeys[code]; ok {
		return name
	}
	return evdev.CodeName(evdev.EV_KEY, code)
}

var evdevKeys = map[evdev.EvCode]string{
	evdev.KEY_LEFTSHIFT:  "ShiftLeft",
	evdev.KEY_RIGHTSHIFT: "ShiftRight",
	evdev.KEY_LEFTCTRL:   "ControlLeft",
	evdev.KEY_RIGHTCTRL:  "ControlRight",
	evdev.KEY_LEFTALT:    "Alt",
	evdev.KEY_RIGHTALT:   "AltGr",
	evdev.KEY_LEFTMETA:   "MetaLeft",
	evdev.KEY_RIGHTMETA:  "MetaRight",

	evdev.KEY_ESC:        "Escape",
	evdev.KEY_TAB:        "Tab",
	evdev.KEY_ENTER:      "Return",
	evdev.KEY_BACKSPACE:  "Backspace",
	evdev.KEY_SPACE:      "Space",
	evdev.KEY_CAPSLOCK:   "CapsLock",
	evdev.KEY_NUMLOCK:    "NumLock",
	evdev.KEY_SCROLLLOCK: "ScrollLock",
	evdev.KEY_SYSRQ:      "PrintScreen",
	evdev.KEY_PAUSE:      "Pause",
	evdev.KEY_INSERT:     "Insert",
	evdev.KEY_DELETE:     "Delete",
	evdev.KEY_HOME:       "Home",
	evdev.KEY_END:        "End",
	evdev.KEY_PAGEUP:     "PageUp",
	evdev.KEY_PAGEDOWN:   "PageDown",
	evdev.KEY_UP:         "UpArrow",
	evdev.KEY_DOWN:       "DownArrow",
	evdev.KEY_LEFT:       "LeftArrow",
	evdev.KEY_RIGHT:      "RightArrow",

	evdev.KEY_F1: "F1", evdev.KEY_F2: "F2", evdev.KEY_F3: "F3", evdev.KEY_F4: "F4",
	evdev.KEY_F5: "F5", evdev.KEY_F6: "F6", evdev.KEY_F7: "F7", evdev.KEY_F8: "F8",
	evdev.KEY_F9: "F9", evdev.KEY_F10: "F10", evdev.KEY_F11: "F11", evdev.KEY_F12: "F12",

	evdev.KEY_A: "KeyA", evdev.KEY_B: "KeyB", evdev.KEY_C: "KeyC", evdev.KEY_D: "KeyD",
	evdev.KEY_E: "KeyE", evdev.KEY_F: "KeyF", evdev.KEY_G: "KeyG", evdev.KEY_H: "KeyH",
	evdev.KEY_I: "KeyI", evdev.KEY_J: "KeyJ", evdev.KEY_K: "KeyK", evdev.KEY_L: "KeyL",
	evdev.KEY_M: "KeyM", evdev.KEY_N: "KeyN", evdev.KEY_O: "KeyO", evdev.KEY_P: "KeyP",
	evdev.KEY_Q: "KeyQ", evdev.KEY_R: "KeyR", evdev.KEY_S: "KeyS", evdev.KEY_T: "KeyT",
	evdev.KEY_U: "KeyU", evdev.KEY_V: "KeyV", evdev.KEY_W: "KeyW", evdev.KEY_X: "KeyX",
	evdev.KEY_Y: "KeyY", evdev.KEY_Z: "KeyZ",

	evdev.KEY_1: "Num1", evdev.KEY_2: "Num2", evdev.KEY_3: "Num3", evdev.KEY_4: "Num4",
	evdev.KEY_5: "Num5", evdev.KEY_6: "Num6", evdev.KEY_7: "Num7", evdev.KEY_8: "Num8",
	evdev.KEY_9: "Num9", evdev.KEY_0: "Num0",

	evdev.KEY_KP0: "Kp0", evdev.KEY_KP1: "Kp1", evdev.KEY_KP2: "Kp2", evdev.KEY_KP3: "Kp3",
	evdev.KEY_KP4: "Kp4", evdev.KEY_KP5: "Kp5", evdev.KEY_KP6: "Kp6", evdev.KEY_KP7: "Kp7",
	evdev.KEY_KP8: "Kp8", evdev.KEY_KP9: "Kp9",
	evdev.KEY_KPENTER:    "KpReturn",
	evdev.KEY_KPMINUS:    "KpMinus",
	evdev.KEY_KPPLUS:     "KpPlus",
	evdev.KEY_KPASTERISK: "KpMultiply",
	evdev.KEY_KPSLASH:    "KpDivide",
	evdev.KEY_KPDOT:      "KpDelete",

	evdev.KEY_GRAVE:      "BackQuote",
	evdev.KEY_MINUS:      "Minus",
	evdev.KEY_EQUAL:      "Equal",
	evdev.KEY_LEFTBRACE:  "LeftBracket",
	evdev.KEY_RIGHTBRACE: "RightBracket",
	evdev.KEY_BACKSLASH:  "BackSlash",
	evdev.KEY_102ND:      "IntlBackslash",
	evdev.KEY_SEMICOLON:  "SemiColon",
	evdev.KEY_APOSTROPHE: "Quote",
	evdev.KEY_COMMA:      "Comma",
	evdev.KEY_DOT:        "Dot",
	evdev.KEY_SLASH:      "Slash",
}
