package domain

import "time"

// Severity is the tone of a user-facing notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a fire-and-forget message for the user.
type Notification struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	At          time.Time `json:"at"`

	// Ref points at a resource produced by the action, e.g. a download id.
	Ref string `json:"ref,omitempty"`
}
