package control

// MenuItem is one entry of the tray menu.
type MenuItem struct {
	Label  string
	Action Action
}

// TrayRequest asks the window host to create a tray icon with the given
// menu entries, in order.
type TrayRequest struct {
	IconPath string
	Items    []MenuItem
}

// DefaultTrayMenu returns the Show Window, Hide Window and Exit entries.
// translate maps an English label to the display language.
func DefaultTrayMenu(translate func(string) string) []MenuItem {
	if translate == nil {
		translate = func(s string) string { return s }
	}
	return []MenuItem{
		{Label: translate("Show Window"), Action: ActionShowWindow},
		{Label: translate("Hide Window"), Action: ActionHideWindow},
		{Label: translate("Exit"), Action: ActionExit},
	}
}
