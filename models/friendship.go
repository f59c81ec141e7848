package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
)

// Friendship is one edge per unordered user pair. The pair key is unique,
// so a pair is either unlinked, pending in exactly one direction, or friends.
type Friendship struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PairKey     string             `bson:"pairKey" json:"-"`
	RequesterID primitive.ObjectID `bson:"requesterId" json:"requesterId"`
	RecipientID primitive.ObjectID `bson:"recipientId" json:"recipientId"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PairKey is order-independent: PairKey(a, b) == PairKey(b, a).
func PairKey(a, b primitive.ObjectID) string {
	x, y := a.Hex(), b.Hex()
	if x > y {
		x, y = y, x
	}
	return x + ":" + y
}
