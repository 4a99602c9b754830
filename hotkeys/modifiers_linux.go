//go:build linux

package hotkeys

import "golang.design/x/hotkey"

// On X11 Alt is Mod1 and Super is Mod4.
var modMap = map[string]hotkey.Modifier{
	"ctrl":  hotkey.ModCtrl,
	"shift": hotkey.ModShift,
	"alt":   hotkey.Mod1,
	"super": hotkey.Mod4,
}
