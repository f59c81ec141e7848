package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"linkup/models"
	"linkup/store"
	"linkup/utils"
)

type SendFriendRequestRequest struct {
	CurrentUserID  string `json:"currentUserId" binding:"required"`
	SelectedUserID string `json:"selectedUserId" binding:"required"`
}

type AcceptFriendRequestRequest struct {
	SenderID    string `json:"senderId" binding:"required"`
	RecepientID string `json:"recepientId" binding:"required"`
}

func (h *Handler) SendFriendRequest(c *gin.Context) {
	var req SendFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if req.CurrentUserID == req.SelectedUserID {
		utils.BadRequest(c, "cannot send a friend request to yourself")
		return
	}

	ctx := c.Request.Context()
	for _, id := range []string{req.CurrentUserID, req.SelectedUserID} {
		if _, err := h.Users.GetByID(ctx, id); err != nil {
			if errors.Is(err, store.ErrInvalidID) {
				utils.BadRequest(c, "invalid user id")
				return
			}
			if errors.Is(err, store.ErrNotFound) {
				utils.NotFound(c, "User not found")
				return
			}
			log.Printf("SendFriendRequest: %v", err)
			utils.InternalError(c, "Failed to send friend request")
			return
		}
	}

	err := h.Friends.CreateRequest(ctx, req.CurrentUserID, req.SelectedUserID)
	if errors.Is(err, store.ErrDuplicate) {
		utils.BadRequest(c, "a request or friendship already exists for this pair")
		return
	}
	if err != nil {
		log.Printf("SendFriendRequest: %v", err)
		utils.InternalError(c, "Failed to send friend request")
		return
	}

	utils.Success(c, gin.H{"message": "Friend request sent"})
}

func (h *Handler) AcceptFriendRequest(c *gin.Context) {
	var req AcceptFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	for _, id := range []string{req.SenderID, req.RecepientID} {
		if _, err := h.Users.GetByID(ctx, id); err != nil {
			if errors.Is(err, store.ErrInvalidID) {
				utils.BadRequest(c, "invalid user id")
				return
			}
			if errors.Is(err, store.ErrNotFound) {
				utils.NotFound(c, "User not found")
				return
			}
			log.Printf("AcceptFriendRequest: %v", err)
			utils.InternalError(c, "Failed to accept friend")
			return
		}
	}

	err := h.Friends.Accept(ctx, req.SenderID, req.RecepientID)
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFound(c, "Friend request not found")
		return
	}
	if err != nil {
		log.Printf("AcceptFriendRequest: %v", err)
		utils.InternalError(c, "Failed to accept friend")
		return
	}

	utils.Success(c, gin.H{"message": "Friend request accepted"})
}

func (h *Handler) GetFriendRequests(c *gin.Context) {
	h.listRelated(c, h.Friends.ListIncoming, "Failed to get friend requests")
}

func (h *Handler) GetSentFriendRequests(c *gin.Context) {
	h.listRelated(c, h.Friends.ListOutgoing, "Failed to get sent friend requests")
}

func (h *Handler) GetAcceptedFriends(c *gin.Context) {
	h.listRelated(c, h.Friends.ListFriends, "Failed to get accepted friends")
}

// GetFriendIDs is the legacy shape of the friends list: ids only.
func (h *Handler) GetFriendIDs(c *gin.Context) {
	userID := c.Param("userId")

	ctx := c.Request.Context()
	if _, err := h.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
			utils.NotFound(c, "User not found")
			return
		}
		log.Printf("GetFriendIDs: %v", err)
		utils.InternalError(c, "Failed to get friends")
		return
	}

	friends, err := h.Friends.ListFriends(ctx, userID)
	if err != nil {
		log.Printf("GetFriendIDs: %v", err)
		utils.InternalError(c, "Failed to get friends")
		return
	}

	ids := make([]string, 0, len(friends))
	for _, f := range friends {
		ids = append(ids, f.ID.Hex())
	}
	utils.Success(c, ids)
}

func (h *Handler) listRelated(c *gin.Context, list func(ctx context.Context, userID string) ([]models.User, error), failMsg string) {
	userID := c.Param("userId")

	users, err := list(c.Request.Context(), userID)
	if errors.Is(err, store.ErrInvalidID) {
		utils.BadRequest(c, "invalid user id")
		return
	}
	if err != nil {
		log.Printf("%s: %v", failMsg, err)
		utils.InternalError(c, failMsg)
		return
	}

	utils.Success(c, models.ToProfiles(users))
}
