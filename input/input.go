// Package input decouples game logic from the windowing backend. Keys are
// plain string identifiers and the keyboard is read once per frame into a
// State value that gets passed down into entity updates, so nothing in the
// game mutates or reads global key state.
package input

// Key identifies a keyboard key ("w", "s", "`", ...).
type Key string

// Bindings is one paddle's key pair.
type Bindings struct {
	Up   Key
	Down Key
}

// State is a snapshot of the keyboard for a single frame.
type State struct {
	pressed     map[Key]bool
	justPressed map[Key]bool
}

// Capture builds the snapshot for this frame.
func Capture(pressed, justPressed []Key) State {
	s := State{
		pressed:     make(map[Key]bool, len(pressed)),
		justPressed: make(map[Key]bool, len(justPressed)),
	}
	for _, k := range pressed {
		s.pressed[k] = true
	}
	for _, k := range justPressed {
		s.justPressed[k] = true
	}
	return s
}

// Pressed reports whether k is held this frame.
func (s State) Pressed(k Key) bool {
	return s.pressed[k]
}

// JustPressed reports whether k went down this frame.
func (s State) JustPressed(k Key) bool {
	return s.justPressed[k]
}
