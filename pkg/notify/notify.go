package notify

import "time"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

var severityColors = map[Severity]string{
	SeveritySuccess: "#4CAF50",
	SeverityError:   "#f44336",
	SeverityWarning: "#ff9800",
	SeverityInfo:    "#2196F3",
}

const (
	// DefaultDismiss is how long a generic toast stays on screen.
	DefaultDismiss = 5 * time.Second
	// CaptureDismiss is used for the shorter capture confirmation.
	CaptureDismiss = 3 * time.Second
)

// Notification is a transient UI message. Clients render it with the given
// color and remove it after DismissAfterMs.
type Notification struct {
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	Color          string   `json:"color"`
	DismissAfterMs int64    `json:"dismiss_after_ms"`
}

func New(severity Severity, message string) Notification {
	return build(severity, message, DefaultDismiss)
}

// CaptureConfirmation is the toast shown right after a successful webcam
// capture.
func CaptureConfirmation(message string) Notification {
	return build(SeveritySuccess, message, CaptureDismiss)
}

func Color(severity Severity) string {
	color, ok := severityColors[severity]
	if !ok {
		return severityColors[SeverityInfo]
	}
	return color
}

func build(severity Severity, message string, dismiss time.Duration) Notification {
	return Notification{
		Severity:       severity,
		Message:        message,
		Color:          Color(severity),
		DismissAfterMs: dismiss.Milliseconds(),
	}
}
