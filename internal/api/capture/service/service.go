package captureService

import (
	"IdentityPlatform/internal/entity"
	"IdentityPlatform/pkg/quality"
	"IdentityPlatform/pkg/utils"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type ICaptureService interface {
	OpenSession() *entity.CaptureSession
	StartStream(id string, width, height int) (*entity.CaptureSession, error)
	FailStream(id string, message string) (*entity.CaptureSession, error)
	SubmitFrame(id string, data []byte) (uint64, error)
	ScoreFrame(id string, token uint64) (*quality.Result, error)
	Capture(id string) (*entity.ImageFile, *quality.Result, error)
	Session(id string) (*entity.CaptureSession, error)
	CloseSession(id string)
}

type captureService struct {
	log      *logrus.Logger
	utils    utils.IUtils
	mu       sync.RWMutex
	sessions map[string]*captureSession
}

// captureSession is the mutable server-side state of one webcam session.
// frameToken increases on every frame; scoring results are only published
// when their token still matches, which resolves the race between a slow
// score for an old frame and a newer frame arriving meanwhile.
type captureSession struct {
	mu         sync.Mutex
	id         string
	state      entity.CaptureState
	width      int
	height     int
	errMessage string
	frameToken uint64
	frame      []byte
	createdAt  time.Time
}

func NewCaptureService(log *logrus.Logger, utils utils.IUtils) ICaptureService {
	return &captureService{
		log:      log,
		utils:    utils,
		sessions: make(map[string]*captureSession),
	}
}
