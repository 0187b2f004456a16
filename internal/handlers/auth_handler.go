package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/seniorconnect-sg/community-api/internal/config"
	"github.com/seniorconnect-sg/community-api/internal/httperr"
	"github.com/seniorconnect-sg/community-api/internal/httpresp"
	"github.com/seniorconnect-sg/community-api/internal/middleware"
	"github.com/seniorconnect-sg/community-api/internal/models"
	"github.com/seniorconnect-sg/community-api/internal/validators"
)

// ======================================================
// AUTH
// ======================================================

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db     *gorm.DB
	cfg    *config.Config
	logger *zap.Logger
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, logger: logger}
}

type registerRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Please fill in display name, a valid email and a password of at least 8 characters.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "We could not verify that email address. Please check it and try again.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("password hash failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	token := newVerifyToken()
	user := models.User{
		DisplayName:  strings.TrimSpace(req.DisplayName),
		Email:        email,
		PasswordHash: string(hash),
		VerifyToken:  &token,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			httperr.BadRequest(c, "email_taken", "An account with this email already exists. Try signing in instead.")
			return
		}
		h.logger.Error("user insert failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	// The verify link would normally go out by email; returning the token
	// lets the frontend drive verification until SES is wired up.
	httpresp.Created(c, gin.H{
		"id":           user.ID,
		"email":        user.Email,
		"verify_token": token,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Please enter your email and password.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := h.db.WithContext(c.Request.Context()).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Email or password is incorrect.")
			return
		}
		h.logger.Error("user lookup failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Email or password is incorrect.")
		return
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"admin": user.IsAdmin,
		"exp":   time.Now().Add(tokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		h.logger.Error("token sign failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	httpresp.OK(c, gin.H{
		"token": signed,
		"user": gin.H{
			"id":           user.ID,
			"display_name": user.DisplayName,
			"email":        user.Email,
			"is_admin":     user.IsAdmin,
			"is_verified":  user.IsVerified,
		},
	})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		httperr.BadRequest(c, "missing_token", "The verification link is incomplete.")
		return
	}

	var user models.User
	err := h.db.WithContext(c.Request.Context()).Where("verify_token = ?", token).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.BadRequest(c, "invalid_token", "This verification link is invalid or has already been used.")
			return
		}
		h.logger.Error("verify lookup failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	user.IsVerified = true
	user.VerifyToken = nil
	if err := h.db.WithContext(c.Request.Context()).Save(&user).Error; err != nil {
		h.logger.Error("verify save failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	httpresp.OK(c, gin.H{"verified": true})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var user models.User
	err := h.db.WithContext(c.Request.Context()).First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "We could not find your account.")
			return
		}
		h.logger.Error("me lookup failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong on our side. Please try again in a moment.")
		return
	}

	httpresp.OK(c, user)
}

func newVerifyToken() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
