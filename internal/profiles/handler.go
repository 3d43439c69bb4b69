package profiles

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	v1 "github.com/horizon-lab/project-horizon/internal/api/v1"
	httperr "github.com/horizon-lab/project-horizon/internal/core/errors"
	"github.com/horizon-lab/project-horizon/internal/core/storage"

	"github.com/gin-gonic/gin"
)

const (
	msgMissingName      = "Profile name is required"
	msgDuplicateProfile = "Profile already exists"
	msgProfileNotFound  = "Profile not found"
	msgInvalidJSON      = "Invalid JSON body"
	msgBodyTooLarge     = "Request body exceeds maximum allowed size"
	msgStorageFailed    = "Failed to process profile request"
)

// CreateHandler handles POST /profiles.
func (s *Service) CreateHandler(c *gin.Context) {
	maxBytes := int64(s.maxBodySizeBytes)
	bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBytes+1))
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		writeError(c, http.StatusInternalServerError, httperr.HttpInternalError, msgStorageFailed, nil)
		return
	}
	if int64(len(bodyBytes)) > maxBytes {
		writeError(c, http.StatusRequestEntityTooLarge, httperr.HttpInvalidJsonError, msgBodyTooLarge, nil)
		return
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var req v1.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, httperr.HttpInvalidJsonError, msgInvalidJSON, err.Error())
		return
	}

	profile, err := s.Create(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err, "create")
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// ListHandler handles GET /profiles.
func (s *Service) ListHandler(c *gin.Context) {
	profiles, err := s.List(c.Request.Context())
	if err != nil {
		s.fail(c, err, "list")
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetHandler handles GET /profiles/:id.
func (s *Service) GetHandler(c *gin.Context) {
	profile, err := s.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err, "get")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SummaryHandler handles GET /profiles/:id/summary.
func (s *Service) SummaryHandler(c *gin.Context) {
	summary, err := s.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err, "summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Service) fail(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, ErrMissingName):
		writeError(c, http.StatusBadRequest, httperr.HttpValidationError, msgMissingName, nil)
	case errors.Is(err, ErrDuplicateProfile):
		writeError(c, http.StatusBadRequest, httperr.HttpDuplicateProfileError, msgDuplicateProfile, nil)
	case errors.Is(err, storage.ErrNotFound):
		writeError(c, http.StatusNotFound, httperr.HttpNotFoundError, msgProfileNotFound, nil)
	default:
		slog.Error("Profile request failed", "op", op, "error", err)
		writeError(c, http.StatusInternalServerError, httperr.HttpInternalError, msgStorageFailed, nil)
	}
}

func writeError(c *gin.Context, status int, errorType, message string, details interface{}) {
	c.JSON(status, httperr.ErrorResponse{
		ErrorType: errorType,
		Message:   message,
		Details:   details,
	})
}
