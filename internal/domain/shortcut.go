package domain

// DefaultActions is the canonical rebindable action table. The embedding
// editor extends it; the CLI uses it as-is for listing and persistence.
func DefaultActions() []Action {
	return []Action{
		{Name: "file.new", Title: "New File", DefaultShortcut: "Ctrl+N"},
		{Name: "file.open", Title: "Open File", DefaultShortcut: "Ctrl+O"},
		{Name: "file.save", Title: "Save File", DefaultShortcut: "Ctrl+S"},
		{Name: "file.save_as", Title: "Save File As", DefaultShortcut: "Ctrl+Shift+S"},
		{Name: "edit.find", Title: "Find", DefaultShortcut: "Ctrl+F"},
		{Name: "edit.replace", Title: "Find and Replace", DefaultShortcut: "Ctrl+H"},
		{Name: "tools.run_last", Title: "Run Last External Tool", DefaultShortcut: "Ctrl+R"},
		{Name: "help.check_updates", Title: "Check for Updates", DefaultShortcut: ""},
	}
}

// Action is a named, rebindable application action.
type Action struct {
	Name            string
	Title           string
	DefaultShortcut string
	Shortcut        string
}

// Effective returns the shortcut in force for the action.
func (a Action) Effective() string {
	if a.Shortcut != "" {
		return a.Shortcut
	}
	return a.DefaultShortcut
}

// ApplyShortcuts initializes each action's shortcut from the stored
// overrides, falling back to the action's default.
func ApplyShortcuts(actions []Action, stored map[string]string) []Action {
	out := make([]Action, len(actions))
	copy(out, actions)
	for i := range out {
		if chord, ok := stored[out[i].Name]; ok && chord != "" {
			out[i].Shortcut = chord
		} else {
			out[i].Shortcut = out[i].DefaultShortcut
		}
	}
	return out
}

// CollectShortcuts gathers the shortcut of each action for persistence.
// Actions still bound to their default are skipped so that changing a
// default in a later release takes effect for users who never rebound it.
func CollectShortcuts(actions []Action) map[string]string {
	out := map[string]string{}
	for _, a := range actions {
		if a.Shortcut != "" && a.Shortcut != a.DefaultShortcut {
			out[a.Name] = a.Shortcut
		}
	}
	return out
}
