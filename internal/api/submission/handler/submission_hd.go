package submissionHandler

import (
	"IdentityPlatform/internal/api/submission"
	"IdentityPlatform/internal/entity"
	contextPkg "IdentityPlatform/pkg/context"
	"IdentityPlatform/pkg/handlerUtil"
	"IdentityPlatform/pkg/log"
	"errors"
	"io"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *SubmissionHandler) HandleCreateSubmission(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing submission request")

	var req submission.SubmissionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}
	req.ApplicationID = submission.NormalizeApplicationID(req.ApplicationID)

	file, err := ctx.FormFile("face_image")
	if err != nil {
		return errHandler.Handle(ctx, requestID, submission.ErrNoFileUploaded, ctx.Path(), "read_form_file")
	}

	image, err := readImageFile(file)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "open_file")
	}

	data, fields, err := h.submissionService.ProcessSubmission(c, req, *image)
	if err != nil {
		if errors.Is(err, submission.ErrFieldsInvalid) {
			h.log.WithFields(log.Fields{
				"request_id": requestID,
				"path":       ctx.Path(),
			}).Warn("Submission blocked by field validation")
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":  "Please correct the highlighted fields",
				"code":   "FIELDS_INVALID",
				"fields": fields,
			})
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "process_submission")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id":    requestID,
			"path":          ctx.Path(),
			"submission_id": data.SubmissionID,
			"score":         data.Quality.Score,
			"verified":      data.Verification.Verified,
		}).Info("Submission accepted")
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, submission.SubmissionResponse{
			Data: *data,
		})
	}
}

func (h *SubmissionHandler) HandleInspectQuality(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	file, err := ctx.FormFile("face_image")
	if err != nil {
		return errHandler.Handle(ctx, requestID, submission.ErrNoFileUploaded, ctx.Path(), "read_form_file")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"file_name":  file.Filename,
		"file_size":  file.Size,
	}).Debug("Processing quality inspection")

	image, err := readImageFile(file)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "open_file")
	}

	result, err := h.submissionService.InspectImage(*image)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "inspect_image")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, submission.QualityResponse{
		Data: *result,
	})
}

func (h *SubmissionHandler) HandleValidateField(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	var req submission.FieldValidationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result := h.submissionService.ValidateField(entity.FieldKind(req.Field), req.Value)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, submission.FieldValidationResponse{
		Data: result,
	})
}

func readImageFile(file *multipart.FileHeader) (*entity.ImageFile, error) {
	content, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer content.Close()

	data, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}

	return &entity.ImageFile{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Data:        data,
	}, nil
}
