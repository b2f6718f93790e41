package submissionService

import (
	"IdentityPlatform/internal/api/submission"
	"IdentityPlatform/internal/entity"
	"IdentityPlatform/pkg/quality"
	"IdentityPlatform/pkg/utils"
	"IdentityPlatform/pkg/verify"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ISubmissionService interface {
	ProcessSubmission(ctx context.Context, req submission.SubmissionRequest, image entity.ImageFile) (*submission.SubmissionData, []entity.FieldValidationResult, error)
	ValidateField(kind entity.FieldKind, value string) entity.FieldValidationResult
	InspectImage(image entity.ImageFile) (*quality.Result, error)
}

type submissionService struct {
	log      *logrus.Logger
	verifier verify.IVerifier
	utils    utils.IUtils
}

func NewSubmissionService(
	log *logrus.Logger,
	verifier verify.IVerifier,
	utils utils.IUtils,
) ISubmissionService {
	return &submissionService{
		log:      log,
		verifier: verifier,
		utils:    utils,
	}
}
