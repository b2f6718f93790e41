package config

import (
	captureHandler "IdentityPlatform/internal/api/capture/handler"
	captureService "IdentityPlatform/internal/api/capture/service"
	submissionHandler "IdentityPlatform/internal/api/submission/handler"
	submissionService "IdentityPlatform/internal/api/submission/service"
	"IdentityPlatform/internal/middleware"
	"IdentityPlatform/pkg/utils"
	"IdentityPlatform/pkg/verify"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	verifier   verify.IVerifier
	handlers   []handler
	startedAt  time.Time
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{startedAt: time.Now()}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithVerifier(verifier verify.IVerifier) ServerOption {
	return func(s *Server) error {
		s.verifier = verifier
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Submission Domain
	submissionServices := submissionService.NewSubmissionService(s.log, s.verifier, s.utils)
	submissionHandlers := submissionHandler.New(s.log, s.validator, s.middleware, submissionServices)

	// Capture Domain
	captureServices := captureService.NewCaptureService(s.log, s.utils)
	captureHandlers := captureHandler.New(s.log, s.validator, s.middleware, captureServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, submissionHandlers, captureHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message":             "Server is Healthy!",
			"uptime_seconds":      int64(time.Since(s.startedAt).Seconds()),
			"verifier_configured": os.Getenv("VERIFY_API_URL") != "",
		})
	})
}
