package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"linkup/models"
	"linkup/store"
	"linkup/utils"
)

// ListUsers returns everyone except the given user, unpaginated.
func (h *Handler) ListUsers(c *gin.Context) {
	excludeID := c.Param("userId")

	users, err := h.Users.ListOthers(c.Request.Context(), excludeID)
	if errors.Is(err, store.ErrInvalidID) {
		utils.BadRequest(c, "invalid user id")
		return
	}
	if err != nil {
		log.Printf("ListUsers: %v", err)
		utils.InternalError(c, "Failed to get users")
		return
	}

	utils.Success(c, models.ToProfiles(users))
}

func (h *Handler) GetUser(c *gin.Context) {
	userID := c.Param("userId")

	user, err := h.Users.GetByID(c.Request.Context(), userID)
	if errors.Is(err, store.ErrInvalidID) {
		utils.BadRequest(c, "invalid user id")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFound(c, "User not found")
		return
	}
	if err != nil {
		log.Printf("GetUser: %v", err)
		utils.InternalError(c, "Failed to get user")
		return
	}

	utils.Success(c, user.ToProfile())
}
