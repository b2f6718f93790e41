package entity

import "time"

type CaptureState uint8

const (
	CaptureIdle            CaptureState = 0
	CaptureStreamRequested CaptureState = 1
	CaptureStreamActive    CaptureState = 2
	CaptureFrameCaptured   CaptureState = 3
	CaptureFailed          CaptureState = 4
)

var CaptureStateMap = map[CaptureState]string{
	CaptureIdle:            "IDLE",
	CaptureStreamRequested: "STREAM_REQUESTED",
	CaptureStreamActive:    "STREAM_ACTIVE",
	CaptureFrameCaptured:   "FRAME_CAPTURED",
	CaptureFailed:          "FAILED",
}

func (s CaptureState) String() string {
	return CaptureStateMap[s]
}

func (s CaptureState) Value() uint8 {
	return uint8(s)
}

// CaptureSession is a snapshot of one live webcam session. The session owns
// the stream handle while active and is released on socket teardown.
type CaptureSession struct {
	ID        string
	State     CaptureState
	Width     int
	Height    int
	Error     string
	CreatedAt time.Time
}

// Frame is one raw video frame together with the monotonic token assigned
// when it arrived. Results computed for a stale token are discarded.
type Frame struct {
	Token uint64
	Data  []byte
}
