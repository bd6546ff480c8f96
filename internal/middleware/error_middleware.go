package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/hirehunt/hirehunt/internal/pkg/dberrors"
)

type errorMapping struct {
	target error
	status int
	code   dto.ErrorCode
}

// Checked in order; the first match wins
var errorMappings = []errorMapping{
	{apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	{apperrors.ErrJobNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	{apperrors.ErrReferralNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},

	{apperrors.ErrReferralAlreadyDecided, http.StatusConflict, dto.ErrorCodeConflict},
	{apperrors.ErrDuplicateReferral, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},

	{apperrors.ErrUserAlreadyExists, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
	{apperrors.ErrInvalidReferralStatus, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
	{apperrors.ErrInvalidValidity, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
	{apperrors.ErrInvalidRole, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},

	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, dto.ErrorCodeUnauthorized},

	{apperrors.ErrAccountDisabled, http.StatusForbidden, dto.ErrorCodeForbidden},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
}

// clientError rewrites database rejections of client-supplied text as validation errors
func clientError(err error) error {
	if dberrors.IsInvalidTextValue(err) {
		return fmt.Errorf("%w: value too long or not valid text", apperrors.ErrValidationFailed)
	}
	return err
}

// StatusForError returns the HTTP status and error code err maps to
func StatusForError(err error) (int, dto.ErrorCode) {
	err = clientError(err)
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, dto.ErrorCodeInternalServer
}

// HandleAPIError writes the JSON error envelope for err. Client errors carry
// the error text; server errors are logged and answered generically.
func HandleAPIError(c *gin.Context, err error) {
	_ = c.Error(err)
	err = clientError(err)
	status, code := StatusForError(err)

	if status == http.StatusInternalServerError {
		RequestLogger(c).Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, "Internal server error")))
		return
	}

	detail := dto.NewErrorDetail(code, err.Error())
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Details != nil {
		detail = detail.WithDetails(custom.Details)
	}
	c.JSON(status, dto.NewErrorResponse(detail))
}

// BadRequest writes a 400 error envelope with message
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeBadRequest, message)))
}
