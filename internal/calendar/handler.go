package calendar

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	v1 "github.com/horizon-lab/project-horizon/internal/api/v1"
	httperr "github.com/horizon-lab/project-horizon/internal/core/errors"
	"github.com/horizon-lab/project-horizon/internal/core/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"
)

const (
	contentType = "text/calendar; charset=utf-8"

	// feedReadTimeout bounds a shared feed read that no longer follows any caller's context.
	feedReadTimeout = 10 * time.Second
)

// EventReader is the read side of the event service.
type EventReader interface {
	Get(ctx context.Context, id string) (*v1.EventView, error)
	ListByProfile(ctx context.Context, profileID string) ([]*v1.EventView, error)
}

type Handler struct {
	events    EventReader
	productID string
	feeds     singleflight.Group // Dedupe concurrent renders of the same profile feed
}

func NewHandler(events EventReader, productID string) *Handler {
	return &Handler{events: events, productID: productID}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/events/:id/ics", h.EventHandler)
	r.GET("/events/profile/:profileId/ics", h.ProfileFeedHandler)
}

// EventHandler handles GET /events/:id/ics.
func (h *Handler) EventHandler(c *gin.Context) {
	view, err := h.events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.write(c, view.ID+".ics", Encode(h.productID, []*v1.EventView{view}).Serialize())
}

// ProfileFeedHandler handles GET /events/profile/:profileId/ics.
// An unknown profile yields an empty calendar, matching the JSON listing.
func (h *Handler) ProfileFeedHandler(c *gin.Context) {
	profileID := c.Param("profileId")

	// Calendar clients poll feeds; concurrent polls of one profile share a single read.
	// The shared read must outlive the request that happened to start it.
	detached := context.WithoutCancel(c.Request.Context())
	result, err, _ := h.feeds.Do(profileID, func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(detached, feedReadTimeout)
		defer cancel()

		views, err := h.events.ListByProfile(ctx, profileID)
		if err != nil {
			return nil, err
		}
		return Encode(h.productID, views).Serialize(), nil
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.write(c, profileID+".ics", result.(string))
}

func (h *Handler) write(c *gin.Context, filename, body string) {
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, []byte(body))
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpNotFoundError,
			Message:   "Event not found",
		})
		return
	}
	slog.Error("Calendar export failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
		ErrorType: httperr.HttpInternalError,
		Message:   "Failed to export calendar",
	})
}
