package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
)

// Message field names match the wire format the mobile clients already
// speak, including the historical "recepientId" spelling.
type Message struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SenderID    primitive.ObjectID `bson:"senderId" json:"senderId"`
	RecepientID primitive.ObjectID `bson:"recepientId" json:"recepientId"`
	MessageType string             `bson:"messageType" json:"messageType"`
	Message     string             `bson:"message,omitempty" json:"message,omitempty"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	TimeStamp   time.Time          `bson:"timeStamp" json:"timeStamp"`
}

type MessageSender struct {
	ID   primitive.ObjectID `json:"_id"`
	Name string             `json:"name"`
}

// ThreadMessage is a Message with the sender reference resolved to a
// minimal profile, as returned by the thread endpoint.
type ThreadMessage struct {
	ID          primitive.ObjectID `json:"_id"`
	Sender      MessageSender      `json:"senderId"`
	RecepientID primitive.ObjectID `json:"recepientId"`
	MessageType string             `json:"messageType"`
	Message     string             `json:"message,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty"`
	TimeStamp   time.Time          `json:"timeStamp"`
}
