package domain

import "time"

// Contact request workflow states.
const (
	ContactPending   = "pending"
	ContactContacted = "contacted"
	ContactConverted = "converted"
	ContactDiscarded = "discarded"
)

// ContactRequest is one inquiry submitted through the public contact form.
// Operators work it through the status workflow; Newsletter marks the
// sender's opt-in for campaign mailings.
type ContactRequest struct {
	ID         int64
	Name       string
	Email      string
	Company    string
	Project    string
	Newsletter bool
	Status     string
	Notes      string // internal, never shown to the sender
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ValidContactStatus(s string) bool {
	switch s {
	case ContactPending, ContactContacted, ContactConverted, ContactDiscarded:
		return true
	}
	return false
}
