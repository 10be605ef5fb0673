package models

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a transient single-slot message shown to the user.
type Notification struct {
	Message  string
	Severity Severity
	Visible  bool
}
