package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"linkup/middleware"
	"linkup/models"
	"linkup/store"
	"linkup/utils"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Image    string `json:"image"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.InternalError(c, "failed to hash password")
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Image:    req.Image,
	}

	id, err := h.Users.Create(c.Request.Context(), user)
	if err != nil {
		log.Printf("Register: %v", err)
		utils.InternalError(c, "User registration failed")
		return
	}

	utils.Success(c, gin.H{"message": "User registered successfully", "id": id.Hex()})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Email and password are required")
		return
	}

	user, err := h.Users.GetByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFound(c, "User not found")
		return
	}
	if err != nil {
		log.Printf("Login: %v", err)
		utils.InternalError(c, "Login failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.Unauthorized(c, "Invalid password")
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex())
	if err != nil {
		log.Printf("Login: %v", err)
		utils.InternalError(c, "Login failed")
		return
	}

	utils.Success(c, gin.H{"token": token})
}

// Me returns the profile for the authenticated user; the only route
// behind the auth middleware.
func (h *Handler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.Users.GetByID(c.Request.Context(), userID)
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
		utils.NotFound(c, "User not found")
		return
	}
	if err != nil {
		log.Printf("Me: %v", err)
		utils.InternalError(c, "Failed to get user")
		return
	}

	utils.Success(c, user.ToProfile())
}
