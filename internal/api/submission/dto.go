package submission

import (
	"IdentityPlatform/internal/entity"
	"IdentityPlatform/pkg/notify"
	"IdentityPlatform/pkg/quality"
	"IdentityPlatform/pkg/verify"
)

type SubmissionRequest struct {
	ApplicationID string `form:"application_id" json:"application_id"`
	FullName      string `form:"full_name" json:"full_name"`
	Age           string `form:"age" json:"age"`
	ExamType      string `form:"exam_type" json:"exam_type"`
	Location      string `form:"location" json:"location"`
}

type FieldValidationRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

type FieldValidationResponse struct {
	Data entity.FieldValidationResult `json:"data"`
}

type SubmissionData struct {
	SubmissionID string                     `json:"submission_id"`
	Quality      quality.Result             `json:"quality"`
	Verification *verify.VerificationResult `json:"verification"`
	Notification notify.Notification        `json:"notification"`
}

type SubmissionResponse struct {
	Data SubmissionData `json:"data"`
}

type QualityResponse struct {
	Data quality.Result `json:"data"`
}
