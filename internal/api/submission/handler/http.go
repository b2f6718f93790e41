package submissionHandler

import (
	submissionService "IdentityPlatform/internal/api/submission/service"
	"IdentityPlatform/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SubmissionHandler struct {
	log               *logrus.Logger
	validator         *validator.Validate
	middleware        middleware.Middleware
	submissionService submissionService.ISubmissionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ss submissionService.ISubmissionService,
) *SubmissionHandler {
	return &SubmissionHandler{
		log:               log,
		validator:         validate,
		middleware:        middleware,
		submissionService: ss,
	}
}

func (h *SubmissionHandler) Start(srv fiber.Router) {
	submissions := srv.Group("/submissions")
	submissions.Post("/", h.middleware.NewRateLimiter, h.HandleCreateSubmission)
	submissions.Post("/quality", h.HandleInspectQuality)
	submissions.Post("/fields/validate", h.HandleValidateField)
}
