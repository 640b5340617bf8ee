package handlers

import (
	"errors"
	"net/http"

	"physiocare/models"
	userSvc "physiocare/services/user"
	"physiocare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account, session and profile endpoints.
type UserHandler struct {
	UserService userSvc.UserService
}

// RegisterHandler handles POST /api/auth/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var input struct {
		Email    string      `json:"email" binding:"required,email"`
		Password string      `json:"password" binding:"required,min=6"`
		Role     models.Role `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.UserService.Register(c.Request.Context(), input.Email, input.Password, input.Role)
	if err != nil {
		if errors.Is(err, userSvc.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Bu e-posta adresi zaten kayıtlı"})
			return
		}
		utils.GetLogger().Error("Failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Kayıt oluşturulamadı"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// SignInHandler handles POST /api/auth/signin.
func (h *UserHandler) SignInHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.UserService.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, userSvc.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "E-posta veya şifre hatalı"})
			return
		}
		utils.GetLogger().Error("Failed to sign in", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Giriş yapılamadı"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// SignOutHandler handles POST /api/auth/signout for the caller.
func (h *UserHandler) SignOutHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.UserService.SignOut(c.Request.Context(), userID); err != nil {
		utils.GetLogger().Error("Failed to sign out", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Çıkış yapılamadı"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"signedOut": userID})
}

// GetMeHandler handles GET /api/users/me.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	account, err := h.UserService.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, userSvc.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Kullanıcı bulunamadı"})
			return
		}
		utils.GetLogger().Error("Failed to load user", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Kullanıcı yüklenemedi"})
		return
	}
	c.JSON(http.StatusOK, account)
}

// GetProfileHandler handles GET /api/users/:id/profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	id := c.Param("id")
	profile, err := h.UserService.GetProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, userSvc.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profil bulunamadı"})
			return
		}
		utils.GetLogger().Error("Failed to load profile", zap.String("userID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Profil yüklenemedi"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler handles PUT /api/users/me/profile for the caller.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	profile.UserID = c.GetString("userID")

	if err := h.UserService.UpsertProfile(c.Request.Context(), profile); err != nil {
		utils.GetLogger().Error("Failed to save profile", zap.String("userID", profile.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Profil kaydedilemedi"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateFCMTokenHandler handles PUT /api/users/me/fcm-token so pushes reach
// the caller's current device.
func (h *UserHandler) UpdateFCMTokenHandler(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	userID := c.GetString("userID")
	if err := h.UserService.UpdateFCMToken(c.Request.Context(), userID, input.Token); err != nil {
		utils.GetLogger().Error("Failed to save device token", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cihaz kaydedilemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": userID})
}
