package captureService

import (
	"IdentityPlatform/internal/api/capture"
	"IdentityPlatform/internal/api/submission"
	"IdentityPlatform/internal/entity"
	"IdentityPlatform/pkg/quality"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultStreamWidth  = 1280
	defaultStreamHeight = 720
	captureJPEGQuality  = 90
)

func (s *captureService) OpenSession() *entity.CaptureSession {
	session := &captureSession{
		id:        uuid.NewString(),
		state:     entity.CaptureIdle,
		createdAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"session_id": session.id,
	}).Info("Capture session opened")

	return session.snapshot()
}

// StartStream moves an idle session to StreamRequested. The stream becomes
// active once the first frame arrives; a denial is reported by the client
// through FailStream and is never retried automatically.
func (s *captureService) StartStream(id string, width, height int) (*entity.CaptureSession, error) {
	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	if width <= 0 {
		width = defaultStreamWidth
	}
	if height <= 0 {
		height = defaultStreamHeight
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.state = entity.CaptureStreamRequested
	session.width = width
	session.height = height
	session.errMessage = ""
	session.frame = nil

	return session.snapshotLocked(), nil
}

func (s *captureService) FailStream(id string, message string) (*entity.CaptureSession, error) {
	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.state = entity.CaptureFailed
	session.errMessage = message
	session.frame = nil

	s.log.WithFields(logrus.Fields{
		"session_id": id,
		"message":    message,
	}).Warn("Capture stream failed")

	return session.snapshotLocked(), nil
}

// SubmitFrame stores the latest raw frame and returns the token assigned to
// it. The first frame after StartStream activates the stream; a frame after
// a capture returns the session to the active state.
func (s *captureService) SubmitFrame(id string, data []byte) (uint64, error) {
	session, err := s.lookup(id)
	if err != nil {
		return 0, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	switch session.state {
	case entity.CaptureStreamRequested, entity.CaptureFrameCaptured:
		session.state = entity.CaptureStreamActive
	case entity.CaptureStreamActive:
	case entity.CaptureFailed:
		return 0, capture.ErrStreamFailed
	default:
		return 0, capture.ErrStreamNotActive
	}

	session.frameToken++
	session.frame = make([]byte, len(data))
	copy(session.frame, data)

	return session.frameToken, nil
}

// ScoreFrame scores the frame identified by token. If a newer frame has
// arrived before or during scoring the result is discarded and ErrStaleFrame
// is returned.
func (s *captureService) ScoreFrame(id string, token uint64) (*quality.Result, error) {
	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	if session.frameToken != token || session.frame == nil {
		session.mu.Unlock()
		return nil, capture.ErrStaleFrame
	}
	data := session.frame
	session.mu.Unlock()

	result, err := quality.EstimateBytes(data)
	if err != nil {
		return nil, submission.ErrUnreadableImage
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.frameToken != token {
		return nil, capture.ErrStaleFrame
	}

	return &result, nil
}

// Capture freezes the current frame, re-encodes it as JPEG and scores it
// through the same inspection rules a manual upload goes through. The
// session lands in FrameCaptured and returns to StreamActive with the next
// frame.
func (s *captureService) Capture(id string) (*entity.ImageFile, *quality.Result, error) {
	session, err := s.lookup(id)
	if err != nil {
		return nil, nil, err
	}

	session.mu.Lock()
	if session.state != entity.CaptureStreamActive {
		session.mu.Unlock()
		return nil, nil, capture.ErrStreamNotActive
	}
	if session.frame == nil {
		session.mu.Unlock()
		return nil, nil, capture.ErrNoFrameAvailable
	}
	data := session.frame
	session.mu.Unlock()

	img, err := s.utils.DecodeImage(data)
	if err != nil {
		return nil, nil, submission.ErrUnreadableImage
	}

	encoded, err := s.utils.EncodeJPEG(img, captureJPEGQuality)
	if err != nil {
		return nil, nil, err
	}

	file := &entity.ImageFile{
		Filename:    fmt.Sprintf("capture-%s.jpg", id),
		ContentType: "image/jpeg",
		Size:        int64(len(encoded)),
		Data:        encoded,
	}

	if err := submission.ValidateImageFile(file.ContentType, file.Size); err != nil {
		return nil, nil, err
	}

	result, err := quality.EstimateBytes(file.Data)
	if err != nil {
		return nil, nil, submission.ErrUnreadableImage
	}

	session.mu.Lock()
	session.state = entity.CaptureFrameCaptured
	session.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"session_id": id,
		"file_size":  file.Size,
		"score":      result.Score,
	}).Info("Frame captured")

	return file, &result, nil
}

func (s *captureService) Session(id string) (*entity.CaptureSession, error) {
	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return session.snapshot(), nil
}

// CloseSession releases the stream handle. Called on socket teardown so a
// session never outlives its view.
func (s *captureService) CloseSession(id string) {
	s.mu.Lock()
	_, exists := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if exists {
		s.log.WithFields(logrus.Fields{
			"session_id": id,
		}).Info("Capture session released")
	}
}

func (s *captureService) lookup(id string) (*captureSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, capture.ErrSessionNotFound
	}
	return session, nil
}

func (cs *captureSession) snapshot() *entity.CaptureSession {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.snapshotLocked()
}

func (cs *captureSession) snapshotLocked() *entity.CaptureSession {
	return &entity.CaptureSession{
		ID:        cs.id,
		State:     cs.state,
		Width:     cs.width,
		Height:    cs.height,
		Error:     cs.errMessage,
		CreatedAt: cs.createdAt,
	}
}
