package events

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	v1 "github.com/horizon-lab/project-horizon/internal/api/v1"
	httperr "github.com/horizon-lab/project-horizon/internal/core/errors"
	"github.com/horizon-lab/project-horizon/internal/core/scheduling"
	"github.com/horizon-lab/project-horizon/internal/core/storage"

	"github.com/gin-gonic/gin"
)

const (
	msgReadBodyFailed = "Failed to read request body"
	msgInvalidJSON    = "Invalid JSON body"
	msgBodyTooLarge   = "Request body exceeds maximum allowed size"
	msgEventNotFound  = "Event not found"
	msgStorageFailed  = "Failed to process event request"
)

// requestError carries the structured HTTP error shape from a helper back to the handler.
type requestError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *requestError) Error() string {
	return e.message
}

// CreateHandler handles POST /events.
func (s *Service) CreateHandler(c *gin.Context) {
	var req v1.CreateEventRequest
	if rerr := s.bindJSON(c, &req); rerr != nil {
		writeError(c, rerr)
		return
	}

	view, err := s.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, classify(err, "create"))
		return
	}

	c.JSON(http.StatusCreated, view)
}

// UpdateHandler handles PUT /events/:id.
func (s *Service) UpdateHandler(c *gin.Context) {
	var patch v1.UpdateEventRequest
	if rerr := s.bindJSON(c, &patch); rerr != nil {
		writeError(c, rerr)
		return
	}

	view, err := s.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, classify(err, "update"))
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetHandler handles GET /events/:id.
func (s *Service) GetHandler(c *gin.Context) {
	view, err := s.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, classify(err, "get"))
		return
	}
	c.JSON(http.StatusOK, view)
}

// LogsHandler handles GET /events/:id/logs.
func (s *Service) LogsHandler(c *gin.Context) {
	logs, err := s.Logs(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, classify(err, "logs"))
		return
	}
	c.JSON(http.StatusOK, logs)
}

// ListHandler handles GET /events.
func (s *Service) ListHandler(c *gin.Context) {
	views, err := s.List(c.Request.Context())
	if err != nil {
		writeError(c, classify(err, "list"))
		return
	}
	c.JSON(http.StatusOK, views)
}

// ListByProfileHandler handles GET /events/profile/:profileId.
func (s *Service) ListByProfileHandler(c *gin.Context) {
	views, err := s.ListByProfile(c.Request.Context(), c.Param("profileId"))
	if err != nil {
		writeError(c, classify(err, "list_by_profile"))
		return
	}
	c.JSON(http.StatusOK, views)
}

// bindJSON reads at most maxBodySizeBytes and decodes the body into dst.
func (s *Service) bindJSON(c *gin.Context, dst interface{}) *requestError {
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		return &requestError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return &requestError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgBodyTooLarge,
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	if err := c.ShouldBindJSON(dst); err != nil {
		slog.Warn("Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return &requestError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
			details:    err.Error(),
		}
	}

	return nil
}

// classify maps a service error to its HTTP shape. Unexpected errors are
// logged here and reported to the client without internals.
func classify(err error, op string) *requestError {
	var ve *scheduling.ValidationError
	if errors.As(err, &ve) {
		slog.Info("Event request rejected", "op", op, "reason", ve.Message)
		rerr := &requestError{
			statusCode: http.StatusBadRequest,
			errorType:  validationErrorType(ve.Kind),
			message:    ve.Message,
		}
		if len(ve.Details) > 0 {
			rerr.details = ve.Details
		}
		return rerr
	}

	if errors.Is(err, storage.ErrNotFound) {
		return &requestError{
			statusCode: http.StatusNotFound,
			errorType:  httperr.HttpNotFoundError,
			message:    msgEventNotFound,
		}
	}

	slog.Error("Event request failed", "op", op, "error", err)
	return &requestError{
		statusCode: http.StatusInternalServerError,
		errorType:  httperr.HttpInternalError,
		message:    msgStorageFailed,
	}
}

func validationErrorType(kind error) string {
	switch {
	case errors.Is(kind, scheduling.ErrMissingFields):
		return httperr.HttpMissingFieldsError
	case errors.Is(kind, scheduling.ErrMissingProfiles):
		return httperr.HttpMissingProfilesError
	case errors.Is(kind, scheduling.ErrInvalidRange):
		return httperr.HttpInvalidRangeError
	case errors.Is(kind, scheduling.ErrUnknownProfile):
		return httperr.HttpUnknownProfileError
	case errors.Is(kind, scheduling.ErrInvalidTimezone):
		return httperr.HttpInvalidTimezoneError
	default:
		return httperr.HttpValidationError
	}
}

// writeError serializes a requestError as the JSON HTTP response.
func writeError(c *gin.Context, err *requestError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
