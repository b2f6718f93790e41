package capture

import (
	"IdentityPlatform/pkg/response"
	"net/http"
)

var (
	ErrSessionNotFound  = response.NewError(http.StatusNotFound, "capture session not found")
	ErrStreamNotActive  = response.NewError(http.StatusConflict, "stream is not active")
	ErrStreamFailed     = response.NewError(http.StatusConflict, "stream failed, restart required")
	ErrNoFrameAvailable = response.NewError(http.StatusConflict, "no frame available to capture")
	ErrStaleFrame       = response.NewError(http.StatusConflict, "frame superseded by a newer one")
)
