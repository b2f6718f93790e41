package capture

import (
	"IdentityPlatform/pkg/notify"
	"IdentityPlatform/pkg/quality"
)

// ControlMessage is a text frame sent by the client over the capture socket.
// Binary frames carry raw video frames and need no envelope.
type ControlMessage struct {
	Action  string `json:"action" validate:"required,oneof=start capture stop error"`
	Width   int    `json:"width" validate:"omitempty,min=1,max=4096"`
	Height  int    `json:"height" validate:"omitempty,min=1,max=4096"`
	Message string `json:"message"`
}

const (
	ActionStart   = "start"
	ActionCapture = "capture"
	ActionStop    = "stop"
	ActionError   = "error"
)

type SessionMessage struct {
	Type         string               `json:"type"`
	SessionID    string               `json:"session_id,omitempty"`
	State        string               `json:"state,omitempty"`
	Quality      *quality.Result      `json:"quality,omitempty"`
	Image        string               `json:"image,omitempty"`
	ContentType  string               `json:"content_type,omitempty"`
	Notification *notify.Notification `json:"notification,omitempty"`
	Error        string               `json:"error,omitempty"`
}

const (
	MessageSession       = "session"
	MessageFrameFeedback = "frame_feedback"
	MessageCapture       = "capture"
	MessageError         = "error"
)
