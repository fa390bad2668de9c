package handler

import (
	"errors"
	"net/http"

	"hr-admin/internal/logger"
	"hr-admin/internal/middleware"
	"hr-admin/internal/model"
	"hr-admin/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const cookieMaxAge = 24 * 60 * 60

type AuthHandler struct {
	auth   *service.AuthService
	tokens *service.TokenService
}

func NewAuthHandler(auth *service.AuthService, tokens *service.TokenService) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens}
}

// POST /api/user/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request", "success": false})
		return
	}

	u, err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists", "success": false})
			return
		}
		logger.Error("signup.failed", "email", req.Email, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong!", "success": false})
		return
	}

	token, err := h.tokens.Issue(u.ID, u.IsAdmin)
	if err != nil {
		logger.Error("signup.token", "uid", u.ID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong!", "success": false})
		return
	}

	logger.Info("signup.ok", "uid", u.ID, "email", u.Email)
	h.setTokenCookie(c, token)
	c.JSON(http.StatusCreated, model.AuthResponse{Message: "User created successfully", Success: true, Token: token})
}

// POST /api/user/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request", "success": false})
		return
	}

	u, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found", "success": false})
			return
		}
		logger.Warn("login.failed", "email", req.Email)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials", "success": false})
		return
	}

	token, err := h.tokens.Issue(u.ID, u.IsAdmin)
	if err != nil {
		logger.Error("login.token", "uid", u.ID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong!", "success": false})
		return
	}

	logger.Info("login.ok", "uid", u.ID)
	h.setTokenCookie(c, token)
	c.JSON(http.StatusOK, model.AuthResponse{Message: "Login successful", Success: true, Token: token})
}

// POST /api/user/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, model.AuthResponse{Message: "Logged out successfully", Success: true})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.TokenCookie, token, cookieMaxAge, "/", "", false, true)
}
