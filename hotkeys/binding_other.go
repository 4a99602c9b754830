//go:build !linux && !darwin && !windows

package hotkeys

import (
	"context"
	"errors"
)

// ErrUnsupported is returned on platforms without global hotkeys.
var ErrUnsupported = errors.New("global hotkeys are not supported on this platform")

// Binding is a parsed shortcut such as "ctrl+shift+k".
type Binding struct {
	Name string
}

// ParseBinding always fails: there is nothing to bind to here.
func ParseBinding(s string) (Binding, error) {
	return Binding{}, ErrUnsupported
}

// Listen always fails with ErrUnsupported.
func Listen(context.Context, Binding, func()) error {
	return ErrUnsupported
}
