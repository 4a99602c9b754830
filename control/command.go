// Package control defines the commands the application sends to the window
// host: showing, hiding and closing the overlay, exiting, and the tray menu
// that triggers them. Commands are fire-and-forget; the optional Reply
// channel only confirms that the command loop handled the command.
package control

import "fmt"

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdShowWindow CommandType = iota
	CmdHideWindow
	CmdCloseWindow
	CmdExit
)

func (t CommandType) String() string {
	switch t {
	case CmdShowWindow:
		return "show_window"
	case CmdHideWindow:
		return "hide_window"
	case CmdCloseWindow:
		return "close_window"
	case CmdExit:
		return "exit"
	}
	return fmt.Sprintf("CommandType(%d)", int(t))
}

// Command is the message sent to AppManager.commandLoop.
type Command struct {
	Type  CommandType
	Reply chan error // optional reply channel
}

// Action names a tray menu action.
type Action string

const (
	ActionShowWindow Action = "show_window"
	ActionHideWindow Action = "hide_window"
	ActionExit       Action = "exit"
)

// ParseAction validates a tray action name.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionShowWindow, ActionHideWindow, ActionExit:
		return a, nil
	}
	return "", fmt.Errorf("unknown tray action %q", s)
}

// Command returns the command a tray action triggers.
func (a Action) Command() Command {
	switch a {
	case ActionShowWindow:
		return Command{Type: CmdShowWindow}
	case ActionHideWindow:
		return Command{Type: CmdHideWindow}
	default:
		return Command{Type: CmdExit}
	}
}
