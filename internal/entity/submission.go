package entity

import "time"

type FieldKind string

const (
	FieldFullName      FieldKind = "full_name"
	FieldApplicationID FieldKind = "application_id"
	FieldAge           FieldKind = "age"
	FieldExamType      FieldKind = "exam_type"
	FieldLocation      FieldKind = "location"
)

type Submission struct {
	ID            string
	ApplicationID string
	FullName      string
	Age           int
	ExamType      string
	Location      string
	CreatedAt     time.Time
}

type FieldValidationResult struct {
	Field   FieldKind `json:"field"`
	Valid   bool      `json:"valid"`
	Message string    `json:"message,omitempty"`
}

// ImageFile is an in-memory image blob with its declared content type.
// It is produced either by a multipart upload or by the capture pipeline.
type ImageFile struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}
