package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"linkup/config"
	"linkup/models"
	"linkup/store"
	"linkup/utils"
)

type DeleteMessagesRequest struct {
	Messages []string `json:"messages" binding:"required,min=1"`
}

// SendMessage accepts a multipart form: senderId, recepientId, messageType,
// message, and for image messages the file field "imageFile".
func (h *Handler) SendMessage(c *gin.Context) {
	senderID, err := primitive.ObjectIDFromHex(c.PostForm("senderId"))
	if err != nil {
		utils.BadRequest(c, "invalid sender id")
		return
	}
	recepientID, err := primitive.ObjectIDFromHex(c.PostForm("recepientId"))
	if err != nil {
		utils.BadRequest(c, "invalid recepient id")
		return
	}

	msg := &models.Message{
		SenderID:    senderID,
		RecepientID: recepientID,
		MessageType: c.PostForm("messageType"),
		TimeStamp:   time.Now(),
	}

	switch msg.MessageType {
	case models.MessageTypeText:
		msg.Message = c.PostForm("message")
	case models.MessageTypeImage:
		imageURL, err := h.saveUpload(c)
		if err != nil {
			return
		}
		msg.ImageURL = imageURL
	default:
		utils.BadRequest(c, "messageType must be text or image")
		return
	}

	id, err := h.Messages.Insert(c.Request.Context(), msg)
	if err != nil {
		log.Printf("SendMessage: %v", err)
		utils.InternalError(c, "Failed to send message")
		return
	}

	utils.Success(c, gin.H{"message": "Message sent", "id": id.Hex()})
}

// saveUpload writes the image payload to the upload dir under
// <epoch-millis>-<uuid>-<original name> and returns the served path.
// It writes the error response itself and returns "" on failure.
func (h *Handler) saveUpload(c *gin.Context) (string, error) {
	file, header, err := c.Request.FormFile("imageFile")
	if err != nil {
		utils.BadRequest(c, "image file is required")
		return "", err
	}
	defer file.Close()

	filename := fmt.Sprintf("%d-%s-%s",
		time.Now().UnixMilli(), utils.GenerateUUID(), filepath.Base(header.Filename))
	uploadPath := filepath.Join(config.Cfg.UploadDir, filename)

	out, err := os.Create(uploadPath)
	if err != nil {
		log.Printf("saveUpload: %v", err)
		utils.InternalError(c, "Failed to save file")
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		log.Printf("saveUpload: %v", err)
		utils.InternalError(c, "Failed to save file")
		return "", err
	}

	return "/files/" + filename, nil
}

func (h *Handler) GetThread(c *gin.Context) {
	senderID := c.Param("senderId")
	recepientID := c.Param("recepientId")

	thread, err := h.Messages.Thread(c.Request.Context(), senderID, recepientID)
	if errors.Is(err, store.ErrInvalidID) {
		utils.BadRequest(c, "invalid user id")
		return
	}
	if err != nil {
		log.Printf("GetThread: %v", err)
		utils.InternalError(c, "Failed to get messages")
		return
	}

	utils.Success(c, thread)
}

func (h *Handler) DeleteMessages(c *gin.Context) {
	var req DeleteMessagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	count, err := h.Messages.DeleteMany(c.Request.Context(), req.Messages)
	if errors.Is(err, store.ErrInvalidID) {
		utils.BadRequest(c, "invalid message id")
		return
	}
	if err != nil {
		log.Printf("DeleteMessages: %v", err)
		utils.InternalError(c, "Failed to delete messages")
		return
	}

	utils.Success(c, gin.H{"message": "Messages deleted", "deleted": count})
}
