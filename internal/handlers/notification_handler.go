package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seniorconnect-sg/community-api/internal/httperr"
	"github.com/seniorconnect-sg/community-api/internal/httpresp"
	"github.com/seniorconnect-sg/community-api/internal/middleware"
	"github.com/seniorconnect-sg/community-api/internal/models"
)

// ======================================================
// NOTIFICATIONS
// ======================================================

type NotificationHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewNotificationHandler(db *gorm.DB, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{db: db, logger: logger}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var rows []models.Notification
	err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		h.logger.Error("notification list failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	httpresp.List(c, rows)
}

// Dismiss deletes one notification; scoped to the owner so a guessed id
// cannot touch someone else's.
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	res := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		Delete(&models.Notification{})
	if res.Error != nil {
		h.logger.Error("notification delete failed", zap.Error(res.Error))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "notification_not_found", "We could not find that notification.")
		return
	}

	httpresp.OK(c, gin.H{"dismissed": true})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	err := h.db.WithContext(c.Request.Context()).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
	if err != nil {
		h.logger.Error("notification mark read failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	httpresp.OK(c, gin.H{"marked_read": true})
}

func (h *NotificationHandler) ClearAll(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		Delete(&models.Notification{}).Error
	if err != nil {
		h.logger.Error("notification clear failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	httpresp.OK(c, gin.H{"cleared": true})
}
