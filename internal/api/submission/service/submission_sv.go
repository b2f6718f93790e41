package submissionService

import (
	"IdentityPlatform/internal/api/submission"
	"IdentityPlatform/internal/entity"
	"IdentityPlatform/pkg/log"
	"IdentityPlatform/pkg/notify"
	"IdentityPlatform/pkg/quality"
	"fmt"
	"time"

	"golang.org/x/net/context"
)

// ProcessSubmission runs the full submit path: every field validator, the
// file constraints, the quality gate, then the external verification call.
// When field validation fails the per-field results are returned alongside
// ErrFieldsInvalid so the handler can annotate the form.
func (s *submissionService) ProcessSubmission(ctx context.Context, req submission.SubmissionRequest, image entity.ImageFile) (*submission.SubmissionData, []entity.FieldValidationResult, error) {
	results := submission.ValidateAll(req)
	if !submission.AllValid(results) {
		return nil, results, submission.ErrFieldsInvalid
	}

	qualityResult, err := s.InspectImage(image)
	if err != nil {
		return nil, nil, err
	}

	if !qualityResult.AboveGate() {
		log.WithRequestID(ctx).WithFields(log.Fields{
			"score":    qualityResult.Score,
			"feedback": qualityResult.Feedback,
			"hints":    qualityResult.Hints,
		}).Warn("Submission rejected by quality gate")
		return nil, nil, submission.ErrQualityTooLow
	}

	verification, err := s.verifier.Verify(ctx, image)
	if err != nil {
		log.WithRequestID(ctx).WithFields(log.Fields{
			"error": err.Error(),
		}).Error("Verification call failed")
		return nil, nil, submission.ErrVerificationFailed
	}

	submissionID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return nil, nil, err
	}

	data := &submission.SubmissionData{
		SubmissionID: submissionID,
		Quality:      *qualityResult,
		Verification: verification,
		Notification: notify.New(notify.SeveritySuccess,
			fmt.Sprintf("Registration successful! Quality score: %.2f", qualityResult.Score)),
	}

	return data, results, nil
}

func (s *submissionService) ValidateField(kind entity.FieldKind, value string) entity.FieldValidationResult {
	return submission.ValidateField(kind, value)
}

// InspectImage is the shared preview path: file constraints plus the quality
// heuristic, no verification call. The capture pipeline funnels captured
// frames through here so captures and uploads behave identically.
func (s *submissionService) InspectImage(image entity.ImageFile) (*quality.Result, error) {
	if len(image.Data) == 0 {
		return nil, submission.ErrNoFileUploaded
	}

	if err := submission.ValidateImageFile(image.ContentType, image.Size); err != nil {
		return nil, err
	}

	result, err := quality.EstimateBytes(image.Data)
	if err != nil {
		return nil, submission.ErrUnreadableImage
	}

	return &result, nil
}
