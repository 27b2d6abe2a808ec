package handler

import (
	"net/http"

	"CampusVault/config"
	"CampusVault/internal/dto"
	"CampusVault/internal/service"
	"CampusVault/model"
	"CampusVault/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration, login and token refresh.
type AuthHandler struct {
	users *service.UserService
	cfg   *config.Config
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(users *service.UserService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, cfg: cfg}
}

func userSummary(user *model.User) dto.UserSummary {
	return dto.UserSummary{
		ID:           user.ID,
		Username:     user.UserName,
		Email:        user.Email,
		FullName:     user.FullName,
		FieldOfStudy: user.FieldOfStudy,
	}
}

// Register creates an account and returns a first access token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, err := h.users.Register(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	accessToken, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, user.UserName, utils.TokenTypeAccess, h.cfg.AccessTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":      "User registered successfully",
		"access_token": accessToken,
		"user":         userSummary(user),
	})
}

// Login authenticates and returns access and refresh tokens.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	accessToken, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, user.UserName, utils.TokenTypeAccess, h.cfg.AccessTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	refreshToken, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, user.UserName, utils.TokenTypeRefresh, h.cfg.RefreshTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          userSummary(user),
	})
}

// Refresh exchanges a refresh token for a new access token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh_token required"})
		return
	}
	claims, err := utils.VerifyToken(h.cfg.JWTSecret, req.RefreshToken, utils.TokenTypeRefresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	accessToken, err := utils.GenerateToken(h.cfg.JWTSecret, claims.UserId, claims.Username, utils.TokenTypeAccess, h.cfg.AccessTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), actorID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, userSummary(user))
}
