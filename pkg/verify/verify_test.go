package verify

import (
	"IdentityPlatform/internal/entity"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func testImage() entity.ImageFile {
	return entity.ImageFile{
		Filename:    "photo.jpg",
		ContentType: "image/jpeg",
		Size:        3,
		Data:        []byte{0xFF, 0xD8, 0xFF},
	}
}

func TestVerify_PostsMultipartAndParsesResult(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}

		file, header, err := r.FormFile("face_image")
		if err != nil {
			t.Errorf("missing face_image part: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()

		if header.Filename != "photo.jpg" {
			t.Errorf("expected filename photo.jpg, got %s", header.Filename)
		}
		if ct := header.Header.Get("Content-Type"); ct != "image/jpeg" {
			t.Errorf("expected image/jpeg part, got %s", ct)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"verified":true,"matches":[{"application_id":"APP123","full_name":"Jane Doe","confidence":0.92}],"message":"match found","timestamp":"2026-08-30T10:00:00"}`))
	}))
	defer server.Close()

	t.Setenv("VERIFY_API_URL", server.URL)
	verifier := New(newTestLogger())

	// Act
	result, err := verifier.Verify(context.Background(), testImage())

	// Assert
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !result.Verified {
		t.Error("expected verified result")
	}
	if len(result.Matches) != 1 || result.Matches[0].ApplicationID != "APP123" {
		t.Errorf("unexpected matches: %+v", result.Matches)
	}
}

func TestVerify_NonSuccessStatusIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	t.Setenv("VERIFY_API_URL", server.URL)
	verifier := New(newTestLogger())

	if _, err := verifier.Verify(context.Background(), testImage()); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestVerify_NonJSONBodyIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	t.Setenv("VERIFY_API_URL", server.URL)
	verifier := New(newTestLogger())

	if _, err := verifier.Verify(context.Background(), testImage()); err == nil {
		t.Error("expected error for non-JSON body")
	}
}

func TestVerify_RequiresConfiguredEndpoint(t *testing.T) {
	t.Setenv("VERIFY_API_URL", "")
	verifier := New(newTestLogger())

	if _, err := verifier.Verify(context.Background(), testImage()); err == nil {
		t.Error("expected error when endpoint is not configured")
	}
}
