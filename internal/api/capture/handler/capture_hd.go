package captureHandler

import (
	"IdentityPlatform/internal/api/capture"
	"IdentityPlatform/internal/entity"
	"IdentityPlatform/pkg/notify"
	"encoding/base64"
	"errors"
	"time"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
)

const (
	maxReadTimeout  = 60 * time.Second
	writeTimeout    = 10 * time.Second
	maxFrameMessage = 5 * 1024 * 1024
)

func (h *CaptureHandler) handleCaptureSocket(c *websocket.Conn) {
	h.log.Info("Capture WebSocket client connected")
	defer h.log.Info("Capture WebSocket client disconnected")

	session := h.captureService.OpenSession()
	defer h.captureService.CloseSession(session.ID)

	c.SetReadLimit(maxFrameMessage)
	c.SetPingHandler(func(data string) error {
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	if err := h.writeMessage(c, capture.SessionMessage{
		Type:      capture.MessageSession,
		SessionID: session.ID,
		State:     session.State.String(),
	}); err != nil {
		return
	}

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Capture WebSocket error: %v", err)
			} else {
				h.log.Info("Capture WebSocket connection closed")
			}
			break
		}

		switch messageType {
		case websocket.BinaryMessage:
			if done := h.handleFrame(c, session.ID, message); done {
				return
			}
		case websocket.TextMessage:
			if done := h.handleControl(c, session.ID, message); done {
				return
			}
		default:
			h.log.Warnf("Received unexpected message type: %d", messageType)
		}
	}
}

// handleFrame stores the incoming frame and pushes live quality feedback.
// Stale scoring results are dropped silently, a newer frame already owns the
// feedback slot.
func (h *CaptureHandler) handleFrame(c *websocket.Conn, sessionID string, frame []byte) bool {
	token, err := h.captureService.SubmitFrame(sessionID, frame)
	if err != nil {
		return h.writeError(c, err)
	}

	result, err := h.captureService.ScoreFrame(sessionID, token)
	if err != nil {
		if errors.Is(err, capture.ErrStaleFrame) {
			return false
		}
		return h.writeError(c, err)
	}

	session, err := h.captureService.Session(sessionID)
	if err != nil {
		return true
	}

	return h.writeMessage(c, capture.SessionMessage{
		Type:      capture.MessageFrameFeedback,
		SessionID: sessionID,
		State:     session.State.String(),
		Quality:   result,
	}) != nil
}

func (h *CaptureHandler) handleControl(c *websocket.Conn, sessionID string, message []byte) bool {
	var control capture.ControlMessage
	if err := jsoniter.Unmarshal(message, &control); err != nil {
		return h.writeError(c, err)
	}

	if err := h.validator.Struct(control); err != nil {
		return h.writeError(c, err)
	}

	switch control.Action {
	case capture.ActionStart:
		session, err := h.captureService.StartStream(sessionID, control.Width, control.Height)
		if err != nil {
			return h.writeError(c, err)
		}
		return h.writeMessage(c, capture.SessionMessage{
			Type:      capture.MessageSession,
			SessionID: sessionID,
			State:     session.State.String(),
		}) != nil

	case capture.ActionCapture:
		file, result, err := h.captureService.Capture(sessionID)
		if err != nil {
			return h.writeError(c, err)
		}
		confirmation := notify.CaptureConfirmation("Photo captured successfully!")
		return h.writeMessage(c, capture.SessionMessage{
			Type:         capture.MessageCapture,
			SessionID:    sessionID,
			State:        entity.CaptureFrameCaptured.String(),
			Quality:      result,
			Image:        base64.StdEncoding.EncodeToString(file.Data),
			ContentType:  file.ContentType,
			Notification: &confirmation,
		}) != nil

	case capture.ActionError:
		// Client-side permission denial or missing device. The stream never
		// starts; the user has to re-trigger it.
		session, err := h.captureService.FailStream(sessionID, control.Message)
		if err != nil {
			return h.writeError(c, err)
		}
		notification := notify.New(notify.SeverityError, control.Message)
		return h.writeMessage(c, capture.SessionMessage{
			Type:         capture.MessageError,
			SessionID:    sessionID,
			State:        session.State.String(),
			Error:        session.Error,
			Notification: &notification,
		}) != nil

	case capture.ActionStop:
		return true
	}

	return false
}

func (h *CaptureHandler) writeError(c *websocket.Conn, err error) bool {
	h.log.Errorf("Capture socket error: %v", err)
	notification := notify.New(notify.SeverityError, err.Error())
	writeErr := h.writeMessage(c, capture.SessionMessage{
		Type:         capture.MessageError,
		Error:        err.Error(),
		Notification: &notification,
	})
	return writeErr != nil
}

func (h *CaptureHandler) writeMessage(c *websocket.Conn, message capture.SessionMessage) error {
	if err := c.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		h.log.Errorf("Error setting write deadline: %v", err)
		return err
	}

	if err := c.WriteJSON(message); err != nil {
		h.log.Errorf("Error writing JSON response: %v", err)
		return err
	}

	return c.SetWriteDeadline(time.Time{})
}
