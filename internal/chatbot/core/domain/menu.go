package domain

// SubmenuDirect marks a menu with no sub-options; its answer is looked up
// directly by the menu id.
const SubmenuDirect = "direct"

// Menu is one chatbot menu definition as stored in the document store.
// Submenu is free-form multi-line text with embedded emoji option markers,
// or the "direct" sentinel.
type Menu struct {
	ID      string
	Submenu string
}

// HasOptions reports whether the menu carries selectable sub-options.
func (m Menu) HasOptions() bool {
	return m.Submenu != "" && m.Submenu != SubmenuDirect
}

// Interaction is one logged conversation step. Option is the raw selection
// the user sent ("1".."12" or a single letter). Timestamp is the raw stored
// value coerced to a string; empty when absent.
type Interaction struct {
	UserID    string
	Option    string
	Timestamp string
}

// Answer is one canned chatbot response, keyed by the menu id (direct menus)
// or by menu id + option letter.
type Answer struct {
	ID   string
	Text string
}
