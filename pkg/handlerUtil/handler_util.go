package handlerUtil

import (
	"IdentityPlatform/internal/api/capture"
	"IdentityPlatform/internal/api/submission"
	"IdentityPlatform/pkg/log"
	"IdentityPlatform/pkg/response"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	// Submission domain errors
	if errors.Is(err, submission.ErrNoFileUploaded) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("No file uploaded")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file selected",
			"code":  "NO_FILE_UPLOADED",
		})
	}

	if errors.Is(err, submission.ErrInvalidFileType) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid file type")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid file type. Only JPEG and PNG images are allowed.",
			"code":  "INVALID_FILE_TYPE",
		})
	}

	if errors.Is(err, submission.ErrFileTooLarge) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("File too large")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File too large. Maximum size is 5MB.",
			"code":  "FILE_TOO_LARGE",
		})
	}

	if errors.Is(err, submission.ErrUnreadableImage) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Unreadable image")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image could not be decoded",
			"code":  "UNREADABLE_IMAGE",
		})
	}

	if errors.Is(err, submission.ErrQualityTooLow) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Image quality below gate")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Poor image quality. Please upload a clearer image.",
			"code":  "QUALITY_TOO_LOW",
		})
	}

	if errors.Is(err, submission.ErrVerificationFailed) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Error("Verification service failure")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Verification service is unavailable",
			"code":  "VERIFICATION_FAILED",
		})
	}

	// Capture domain errors
	if errors.Is(err, capture.ErrSessionNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Capture session not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Capture session not found",
			"code":  "SESSION_NOT_FOUND",
		})
	}

	if errors.Is(err, capture.ErrStreamNotActive) || errors.Is(err, capture.ErrNoFrameAvailable) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Capture not ready")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "CAPTURE_NOT_READY",
		})
	}

	// Any other coded error keeps its own status.
	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
