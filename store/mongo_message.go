package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"linkup/models"
)

type MongoMessageStore struct {
	messages *mongo.Collection
	users    *mongo.Collection
}

func NewMongoMessageStore(messages, users *mongo.Collection) *MongoMessageStore {
	return &MongoMessageStore{messages: messages, users: users}
}

func (s *MongoMessageStore) Insert(ctx context.Context, msg *models.Message) (primitive.ObjectID, error) {
	msg.ID = primitive.NewObjectID()
	if msg.TimeStamp.IsZero() {
		msg.TimeStamp = time.Now()
	}

	if _, err := s.messages.InsertOne(ctx, msg); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert message: %w", err)
	}
	return msg.ID, nil
}

// Thread returns every message between the pair in either direction, in
// natural insertion order, with the sender resolved to {_id, name}.
func (s *MongoMessageStore) Thread(ctx context.Context, userA, userB string) ([]models.ThreadMessage, error) {
	a, err := primitive.ObjectIDFromHex(userA)
	if err != nil {
		return nil, ErrInvalidID
	}
	b, err := primitive.ObjectIDFromHex(userB)
	if err != nil {
		return nil, ErrInvalidID
	}

	cursor, err := s.messages.Find(ctx, bson.M{"$or": []bson.M{
		{"senderId": a, "recepientId": b},
		{"senderId": b, "recepientId": a},
	}})
	if err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}
	defer cursor.Close(ctx)

	var msgs []models.Message
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}

	names, err := s.senderNames(ctx, []primitive.ObjectID{a, b})
	if err != nil {
		return nil, err
	}

	thread := make([]models.ThreadMessage, 0, len(msgs))
	for _, m := range msgs {
		thread = append(thread, models.ThreadMessage{
			ID:          m.ID,
			Sender:      models.MessageSender{ID: m.SenderID, Name: names[m.SenderID]},
			RecepientID: m.RecepientID,
			MessageType: m.MessageType,
			Message:     m.Message,
			ImageURL:    m.ImageURL,
			TimeStamp:   m.TimeStamp,
		})
	}
	return thread, nil
}

func (s *MongoMessageStore) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return 0, ErrInvalidID
		}
		oids = append(oids, oid)
	}

	res, err := s.messages.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, fmt.Errorf("delete messages: %w", err)
	}
	return res.DeletedCount, nil
}

func (s *MongoMessageStore) senderNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	cursor, err := s.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("resolve senders: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode senders: %w", err)
	}

	names := make(map[primitive.ObjectID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}
