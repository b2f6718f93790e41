package submission

import (
	"IdentityPlatform/pkg/response"
	"net/http"
)

var (
	ErrNoFileUploaded     = response.NewError(http.StatusBadRequest, "no file uploaded")
	ErrInvalidFileType    = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFileTooLarge       = response.NewError(http.StatusBadRequest, "file too large")
	ErrUnreadableImage    = response.NewError(http.StatusBadRequest, "unreadable image")
	ErrFieldsInvalid      = response.NewError(http.StatusUnprocessableEntity, "one or more fields are invalid")
	ErrQualityTooLow      = response.NewError(http.StatusUnprocessableEntity, "image quality too low")
	ErrVerificationFailed = response.NewError(http.StatusBadGateway, "verification service failure")
	ErrUnknownField       = response.NewError(http.StatusBadRequest, "unknown field")
)
