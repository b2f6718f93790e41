package submission

import (
	"IdentityPlatform/internal/entity"
	"errors"
	"testing"
)

func TestValidateField_FullName(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"Jane Doe", true},
		{"Jo", true},
		{"J", false},
		{"Jane123", false},
		{"", false},
	}

	for _, tc := range cases {
		result := ValidateField(entity.FieldFullName, tc.value)
		if result.Valid != tc.valid {
			t.Errorf("full name %q: expected valid=%v, got %v (%s)", tc.value, tc.valid, result.Valid, result.Message)
		}
		if !result.Valid && result.Message == "" {
			t.Errorf("full name %q: invalid result must carry a message", tc.value)
		}
	}
}

func TestValidateField_ApplicationID(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"ABC", true},
		{"ab-12", true}, // normalizes to AB12
		{"ab", false},
		{"--", false},
		{"", false},
	}

	for _, tc := range cases {
		result := ValidateField(entity.FieldApplicationID, tc.value)
		if result.Valid != tc.valid {
			t.Errorf("application id %q: expected valid=%v, got %v", tc.value, tc.valid, result.Valid)
		}
	}
}

func TestValidateField_Age(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"16", true},
		{"100", true},
		{"15", false},
		{"101", false},
		{"abc", false},
		{"", false},
	}

	for _, tc := range cases {
		result := ValidateField(entity.FieldAge, tc.value)
		if result.Valid != tc.valid {
			t.Errorf("age %q: expected valid=%v, got %v", tc.value, tc.valid, result.Valid)
		}
	}
}

func TestValidateField_Selects(t *testing.T) {
	for _, kind := range []entity.FieldKind{entity.FieldExamType, entity.FieldLocation} {
		if result := ValidateField(kind, ""); result.Valid {
			t.Errorf("%s: empty selection must be invalid", kind)
		}
		if result := ValidateField(kind, "Jakarta"); !result.Valid {
			t.Errorf("%s: non-empty selection must be valid", kind)
		}
	}
}

func TestValidateField_UnknownKind(t *testing.T) {
	if result := ValidateField(entity.FieldKind("favorite_color"), "blue"); result.Valid {
		t.Error("unknown field kind must be invalid")
	}
}

func TestNormalizeApplicationID(t *testing.T) {
	if got := NormalizeApplicationID("ab-12 cd"); got != "AB12CD" {
		t.Errorf("expected AB12CD, got %q", got)
	}
}

func TestValidateImageFile(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		size        int64
		want        error
	}{
		{"jpeg ok", "image/jpeg", 1024, nil},
		{"jpg ok", "image/jpg", 1024, nil},
		{"png ok", "image/png", MaxFileSize, nil},
		{"gif rejected regardless of size", "image/gif", 10, ErrInvalidFileType},
		{"pdf rejected", "application/pdf", 10, ErrInvalidFileType},
		{"oversize rejected regardless of type", "image/png", MaxFileSize + 1, ErrFileTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateImageFile(tc.contentType, tc.size)
			if !errors.Is(err, tc.want) {
				t.Errorf("ValidateImageFile(%q, %d) = %v, want %v", tc.contentType, tc.size, err, tc.want)
			}
		})
	}
}

func TestValidateAll(t *testing.T) {
	// Arrange
	req := SubmissionRequest{
		ApplicationID: "APP123",
		FullName:      "Jane Doe",
		Age:           "25",
		ExamType:      "UTBK",
		Location:      "Jakarta",
	}

	// Act
	results := ValidateAll(req)

	// Assert
	if len(results) != 5 {
		t.Fatalf("expected 5 field results, got %d", len(results))
	}
	if !AllValid(results) {
		t.Errorf("expected all fields valid, got %+v", results)
	}

	req.Age = "15"
	if AllValid(ValidateAll(req)) {
		t.Error("expected invalid age to fail the form")
	}
}
