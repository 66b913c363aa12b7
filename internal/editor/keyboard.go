package editor

import "strings"

// Shortcut is a normalized key chord. Key is the lowercase key name
// ("c", "delete", "escape"); Ctrl covers both Ctrl and Cmd so the bindings
// work unchanged on macOS.
type Shortcut struct {
	Key   string
	Ctrl  bool
	Shift bool
}

// KeyboardShortcuts dispatches key chords to editor operations. A focus
// guard suppresses editing shortcuts while a text entry has focus, so typing
// "a" into a property field never select-alls the canvas.
type KeyboardShortcuts struct {
	editor *Editor

	// InputFocused reports whether a text input currently owns the
	// keyboard. Nil means no input is ever focused.
	InputFocused func() bool

	bindings map[Shortcut]func()
}

// NewKeyboardShortcuts installs the default bindings.
func NewKeyboardShortcuts(e *Editor) *KeyboardShortcuts {
	k := &KeyboardShortcuts{editor: e, bindings: make(map[Shortcut]func())}

	k.Bind(Shortcut{Key: "c", Ctrl: true}, e.Clipboard.Copy)
	k.Bind(Shortcut{Key: "v", Ctrl: true}, func() { e.Clipboard.Paste() })
	k.Bind(Shortcut{Key: "d", Ctrl: true}, func() { e.Clipboard.Duplicate() })
	k.Bind(Shortcut{Key: "a", Ctrl: true}, e.Core.SelectAll)
	k.Bind(Shortcut{Key: "delete"}, e.DeleteSelection)
	k.Bind(Shortcut{Key: "backspace"}, e.DeleteSelection)
	k.Bind(Shortcut{Key: "escape"}, e.Escape)
	return k
}

// Bind registers or replaces a binding.
func (k *KeyboardShortcuts) Bind(s Shortcut, action func()) {
	s.Key = strings.ToLower(s.Key)
	k.bindings[s] = action
}

// Handle dispatches one chord. It returns true when the chord was consumed
// by an editor operation, so the caller can stop propagation.
func (k *KeyboardShortcuts) Handle(s Shortcut) bool {
	s.Key = strings.ToLower(s.Key)

	action, ok := k.bindings[s]
	if !ok {
		return false
	}
	if k.InputFocused != nil && k.InputFocused() && s.Key != "escape" {
		return false
	}
	action()
	return true
}
