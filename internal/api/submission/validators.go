package submission

import (
	"IdentityPlatform/internal/entity"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

const MaxFileSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

var (
	nameRegexp         = regexp.MustCompile(`^[A-Za-z\s]+$`)
	nonUppercaseAlnums = regexp.MustCompile(`[^A-Z0-9]`)
)

// NormalizeApplicationID mirrors the input filter applied while typing:
// uppercase, alphanumerics only.
func NormalizeApplicationID(value string) string {
	return nonUppercaseAlnums.ReplaceAllString(strings.ToUpper(value), "")
}

// ValidateField checks one form field. Absence of error is signaled by the
// Valid flag plus an empty message; the function never panics.
func ValidateField(kind entity.FieldKind, value string) entity.FieldValidationResult {
	switch kind {
	case entity.FieldFullName:
		err := validation.Validate(value,
			validation.Required,
			validation.Length(2, 0),
			validation.Match(nameRegexp),
		)
		return resultFor(kind, err, "Name must be at least 2 characters and contain only letters")

	case entity.FieldApplicationID:
		err := validation.Validate(NormalizeApplicationID(value),
			validation.Required,
			validation.Length(3, 0),
		)
		return resultFor(kind, err, "Application ID must be at least 3 characters")

	case entity.FieldAge:
		age, convErr := strconv.Atoi(strings.TrimSpace(value))
		if convErr != nil {
			return invalid(kind, "Age must be a number between 16 and 100")
		}
		err := validation.Validate(age, validation.Min(16), validation.Max(100))
		return resultFor(kind, err, "Age must be between 16 and 100")

	case entity.FieldExamType:
		err := validation.Validate(value, validation.Required)
		return resultFor(kind, err, "Please select an exam type")

	case entity.FieldLocation:
		err := validation.Validate(value, validation.Required)
		return resultFor(kind, err, "Please select a location")

	default:
		return invalid(kind, "Unknown field")
	}
}

// ValidateAll runs every field validator for a submission and reports each
// result, valid or not, so the caller can annotate the whole form at once.
func ValidateAll(req SubmissionRequest) []entity.FieldValidationResult {
	return []entity.FieldValidationResult{
		ValidateField(entity.FieldFullName, req.FullName),
		ValidateField(entity.FieldApplicationID, req.ApplicationID),
		ValidateField(entity.FieldAge, req.Age),
		ValidateField(entity.FieldExamType, req.ExamType),
		ValidateField(entity.FieldLocation, req.Location),
	}
}

func AllValid(results []entity.FieldValidationResult) bool {
	for _, r := range results {
		if !r.Valid {
			return false
		}
	}
	return true
}

// ValidateImageFile enforces the file-level constraints: declared type must
// be JPEG or PNG and the blob must not exceed 5 MiB. Either violation
// rejects the file on its own.
func ValidateImageFile(contentType string, size int64) error {
	if !allowedImageTypes[strings.ToLower(contentType)] {
		return ErrInvalidFileType
	}
	if size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

func resultFor(kind entity.FieldKind, err error, message string) entity.FieldValidationResult {
	if err != nil {
		return invalid(kind, message)
	}
	return entity.FieldValidationResult{Field: kind, Valid: true}
}

func invalid(kind entity.FieldKind, message string) entity.FieldValidationResult {
	return entity.FieldValidationResult{Field: kind, Valid: false, Message: message}
}
