package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seniorconnect-sg/community-api/internal/clock"
	"github.com/seniorconnect-sg/community-api/internal/httperr"
	"github.com/seniorconnect-sg/community-api/internal/httpresp"
	"github.com/seniorconnect-sg/community-api/internal/middleware"
	"github.com/seniorconnect-sg/community-api/internal/models"
	"github.com/seniorconnect-sg/community-api/internal/notify"
	"github.com/seniorconnect-sg/community-api/internal/sanitize"
	"github.com/seniorconnect-sg/community-api/internal/storage"
)

// ======================================================
// EVENTS + RSVP
// ======================================================

const maxPosterBytes = 10 << 20 // 10 MiB upload cap

type EventHandler struct {
	db      *gorm.DB
	clock   clock.Clock
	storage *storage.S3Storage
	notify  *notify.Dispatcher
	logger  *zap.Logger
}

func NewEventHandler(
	db *gorm.DB,
	clk clock.Clock,
	s3 *storage.S3Storage,
	dispatcher *notify.Dispatcher,
	logger *zap.Logger,
) *EventHandler {
	return &EventHandler{
		db:      db,
		clock:   clk,
		storage: s3,
		notify:  dispatcher,
		logger:  logger,
	}
}

type createEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	DateTime    string `json:"date_time" binding:"required"`
	Location    string `json:"location" binding:"required"`
}

func (h *EventHandler) Create(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Please fill in the event name, description, date and location.")
		return
	}

	when, err := time.ParseInLocation("2006-01-02 15:04", req.DateTime, h.clock.Now().Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_date_format", "The event date must be in YYYY-MM-DD HH:MM format.")
		return
	}
	if when.Before(h.clock.Now()) {
		httperr.BadRequest(c, "past_date", "Events cannot be scheduled in the past.")
		return
	}

	event := models.Event{
		Name:        sanitize.Text(req.Name),
		Description: sanitize.Text(req.Description),
		DateTime:    when,
		Location:    sanitize.Text(req.Location),
		OrganizerID: c.GetString(middleware.ContextUserID),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&event).Error; err != nil {
		h.logger.Error("event insert failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	httpresp.Created(c, event)
}

// List returns verified events only, soonest first. Admins can pass
// ?all=true to review unverified submissions.
func (h *EventHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Order("date_time asc")

	isAdmin, _ := c.Get(middleware.ContextIsAdmin)
	if !(isAdmin == true && c.Query("all") == "true") {
		q = q.Where("is_verified = ?", true)
	}

	var events []models.Event
	if err := q.Find(&events).Error; err != nil {
		h.logger.Error("event list failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	httpresp.List(c, events)
}

func (h *EventHandler) Get(c *gin.Context) {
	var event models.Event
	err := h.db.WithContext(c.Request.Context()).First(&event, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "event_not_found", "We could not find that event.")
			return
		}
		h.logger.Error("event get failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	httpresp.OK(c, event)
}

// Verify flips an event to verified so it appears in public listings.
// Admin only; routed behind AdminOnly.
func (h *EventHandler) Verify(c *gin.Context) {
	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Event{}).
		Where("id = ?", c.Param("id")).
		Update("is_verified", true)
	if res.Error != nil {
		h.logger.Error("event verify failed", zap.Error(res.Error))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "event_not_found", "We could not find that event.")
		return
	}

	httpresp.OK(c, gin.H{"verified": true})
}

// UploadPoster stores the event poster: the upload is re-encoded to webp
// (downscaled if oversized) and pushed to S3, and the event row gets the
// public URL.
func (h *EventHandler) UploadPoster(c *gin.Context) {
	eventID := c.Param("id")

	var event models.Event
	err := h.db.WithContext(c.Request.Context()).First(&event, "id = ?", eventID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "event_not_found", "We could not find that event.")
			return
		}
		h.logger.Error("event get failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	isAdmin, _ := c.Get(middleware.ContextIsAdmin)
	if event.OrganizerID != userID && isAdmin != true {
		httperr.Forbidden(c, "not_organizer", "Only the event organiser can change the poster.")
		return
	}

	file, err := c.FormFile("poster")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Please attach an image file named 'poster'.")
		return
	}
	if file.Size > maxPosterBytes {
		httperr.BadRequest(c, "file_too_large", "The poster must be under 10 MB.")
		return
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error("poster open failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}
	defer src.Close()

	webpBytes, err := storage.EncodePosterWebP(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "That file is not a valid image. Please upload a JPG or PNG.")
		return
	}

	key := fmt.Sprintf("events/%s/%s.webp", eventID, uuid.NewString())
	url, err := h.storage.UploadWebP(c.Request.Context(), key, webpBytes)
	if err != nil {
		h.logger.Error("poster upload failed", zap.String("event_id", eventID), zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	event.ImageURL = &url
	if err := h.db.WithContext(c.Request.Context()).Save(&event).Error; err != nil {
		h.logger.Error("poster save failed", zap.String("event_id", eventID), zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	httpresp.OK(c, gin.H{"image_url": url})
}

// RSVP records attendance. Re-submitting an existing RSVP is not an
// error; the unique index over (user, event) backstops the race.
func (h *EventHandler) RSVP(c *gin.Context) {
	eventID := c.Param("id")
	userID := c.GetString(middleware.ContextUserID)

	var event models.Event
	err := h.db.WithContext(c.Request.Context()).First(&event, "id = ?", eventID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "event_not_found", "We could not find that event.")
			return
		}
		h.logger.Error("event get failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	rsvp := models.RSVP{
		UserID:  userID,
		EventID: eventID,
		Status:  "confirmed",
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&rsvp).Error; err != nil {
		if isUniqueViolation(err) {
			httpresp.OK(c, gin.H{"status": "confirmed", "duplicate": true})
			return
		}
		h.logger.Error("rsvp insert failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	h.notify.Dispatch(notify.Message{
		UserID:    userID,
		Type:      "rsvp_confirmed",
		Message:   fmt.Sprintf("You are registered for %s.", event.Name),
		EventName: event.Name,
		DateTime:  event.DateTime.Format("2006-01-02 15:04"),
		Location:  event.Location,
	})

	httpresp.Created(c, rsvp)
}

func (h *EventHandler) CancelRSVP(c *gin.Context) {
	eventID := c.Param("id")
	userID := c.GetString(middleware.ContextUserID)

	res := h.db.WithContext(c.Request.Context()).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&models.RSVP{})
	if res.Error != nil {
		h.logger.Error("rsvp delete failed", zap.Error(res.Error))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "rsvp_not_found", "You are not registered for this event.")
		return
	}

	httpresp.OK(c, gin.H{"cancelled": true})
}

func (h *EventHandler) MyRSVPs(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var rsvps []models.RSVP
	err := h.db.WithContext(c.Request.Context()).
		Preload("Event").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&rsvps).Error
	if err != nil {
		h.logger.Error("rsvp list failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	httpresp.List(c, rsvps)
}
