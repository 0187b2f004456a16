package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seniorconnect-sg/community-api/internal/httperr"
	"github.com/seniorconnect-sg/community-api/internal/httpresp"
	"github.com/seniorconnect-sg/community-api/internal/middleware"
	"github.com/seniorconnect-sg/community-api/internal/models"
	"github.com/seniorconnect-sg/community-api/internal/sanitize"
)

// ======================================================
// FEEDBACK
// ======================================================

const feedbackPageSize = 20

type FeedbackHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewFeedbackHandler(db *gorm.DB, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{db: db, logger: logger}
}

type feedbackRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=100"`
	Subject string `json:"subject" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Please fill in your name, email, subject and message.")
		return
	}

	fb := models.Feedback{
		UserID:  c.GetString(middleware.ContextUserID),
		Name:    sanitize.Text(req.Name),
		Email:   sanitize.Text(req.Email),
		Subject: sanitize.Text(req.Subject),
		Content: sanitize.Text(req.Content),
	}

	if fb.Content == "" {
		httperr.BadRequest(c, "invalid_payload", "The message cannot be empty.")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&fb).Error; err != nil {
		h.logger.Error("feedback insert failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	httpresp.Created(c, gin.H{"id": fb.ID})
}

// ListAll is the admin review surface, newest first, paginated with
// ?page=N (1-based).
func (h *FeedbackHandler) ListAll(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	var total int64
	if err := h.db.WithContext(c.Request.Context()).Model(&models.Feedback{}).Count(&total).Error; err != nil {
		h.logger.Error("feedback count failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	var rows []models.Feedback
	err = h.db.WithContext(c.Request.Context()).
		Order("created_at desc").
		Limit(feedbackPageSize).
		Offset((page - 1) * feedbackPageSize).
		Find(&rows).Error
	if err != nil {
		h.logger.Error("feedback list failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	httpresp.OK(c, gin.H{
		"data":      rows,
		"total":     total,
		"page":      page,
		"page_size": feedbackPageSize,
	})
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	res := h.db.WithContext(c.Request.Context()).
		Where("id = ?", c.Param("id")).
		Delete(&models.Feedback{})
	if res.Error != nil {
		h.logger.Error("feedback delete failed", zap.Error(res.Error))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "feedback_not_found", "We could not find that feedback entry.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
