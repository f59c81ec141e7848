package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"linkup/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
	ErrInvalidID = errors.New("invalid id")
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListOthers(ctx context.Context, excludeID string) ([]models.User, error)
}

// FriendStore manages the friendship edge collection. A pair of users has
// at most one edge; accepting flips its status in a single write.
type FriendStore interface {
	CreateRequest(ctx context.Context, fromID, toID string) error
	Accept(ctx context.Context, senderID, recipientID string) error
	ListIncoming(ctx context.Context, userID string) ([]models.User, error)
	ListOutgoing(ctx context.Context, userID string) ([]models.User, error)
	ListFriends(ctx context.Context, userID string) ([]models.User, error)
}

type MessageStore interface {
	Insert(ctx context.Context, msg *models.Message) (primitive.ObjectID, error)
	Thread(ctx context.Context, userA, userB string) ([]models.ThreadMessage, error)
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}
