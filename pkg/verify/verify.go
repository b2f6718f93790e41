package verify

import (
	"IdentityPlatform/internal/entity"
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// IVerifier forwards an accepted image to the external verification
// endpoint. The boundary contract is a multipart POST with field
// "face_image" and a JSON body in return; anything else is a failure.
type IVerifier interface {
	Verify(ctx context.Context, image entity.ImageFile) (*VerificationResult, error)
}

type Match struct {
	ApplicationID string  `json:"application_id"`
	FullName      string  `json:"full_name"`
	Confidence    float64 `json:"confidence"`
}

type VerificationResult struct {
	Verified  bool    `json:"verified"`
	Matches   []Match `json:"matches"`
	Message   string  `json:"message"`
	Timestamp string  `json:"timestamp"`
}

type verifier struct {
	endpoint string
	client   *http.Client
	log      *logrus.Logger
}

func New(log *logrus.Logger) IVerifier {
	timeout := 15 * time.Second
	if raw := os.Getenv("VERIFY_TIMEOUT"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}

	return &verifier{
		endpoint: os.Getenv("VERIFY_API_URL"),
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}
}

func (v *verifier) Verify(ctx context.Context, image entity.ImageFile) (*VerificationResult, error) {
	if v.endpoint == "" {
		return nil, fmt.Errorf("VERIFY_API_URL is not configured")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="face_image"; filename="%s"`, image.Filename))
	header.Set("Content-Type", image.ContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(image.Data); err != nil {
		return nil, fmt.Errorf("failed to write image part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	v.log.WithFields(logrus.Fields{
		"endpoint":  v.endpoint,
		"file_name": image.Filename,
		"file_size": image.Size,
	}).Debug("Calling verification endpoint")

	resp, err := v.client.Do(req)
	if err != nil {
		v.log.WithFields(logrus.Fields{
			"endpoint": v.endpoint,
			"error":    err.Error(),
		}).Error("Verification request failed")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		v.log.WithFields(logrus.Fields{
			"endpoint": v.endpoint,
			"status":   resp.StatusCode,
		}).Error("Verification endpoint returned non-success status")
		return nil, fmt.Errorf("verification endpoint returned status %d", resp.StatusCode)
	}

	var result VerificationResult
	if err := jsoniter.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse verification response: %w", err)
	}

	v.log.WithFields(logrus.Fields{
		"endpoint": v.endpoint,
		"verified": result.Verified,
		"matches":  len(result.Matches),
	}).Info("Verification completed")

	return &result, nil
}
