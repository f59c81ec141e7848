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

type MongoFriendStore struct {
	friendships *mongo.Collection
	users       *mongo.Collection
}

func NewMongoFriendStore(friendships, users *mongo.Collection) *MongoFriendStore {
	return &MongoFriendStore{friendships: friendships, users: users}
}

func (s *MongoFriendStore) CreateRequest(ctx context.Context, fromID, toID string) error {
	from, err := primitive.ObjectIDFromHex(fromID)
	if err != nil {
		return ErrInvalidID
	}
	to, err := primitive.ObjectIDFromHex(toID)
	if err != nil {
		return ErrInvalidID
	}

	now := time.Now()
	edge := models.Friendship{
		ID:          primitive.NewObjectID(),
		PairKey:     models.PairKey(from, to),
		RequesterID: from,
		RecipientID: to,
		Status:      models.FriendshipPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// The unique pair index rejects a second edge for the same pair, in
	// either direction and regardless of status.
	if _, err := s.friendships.InsertOne(ctx, edge); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert friend request: %w", err)
	}
	return nil
}

func (s *MongoFriendStore) Accept(ctx context.Context, senderID, recipientID string) error {
	sender, err := primitive.ObjectIDFromHex(senderID)
	if err != nil {
		return ErrInvalidID
	}
	recipient, err := primitive.ObjectIDFromHex(recipientID)
	if err != nil {
		return ErrInvalidID
	}

	// Single-document update: pending -> accepted. The orientation filter
	// means only the recipient of the request can accept it.
	res, err := s.friendships.UpdateOne(ctx,
		bson.M{
			"requesterId": sender,
			"recipientId": recipient,
			"status":      models.FriendshipPending,
		},
		bson.M{"$set": bson.M{
			"status":    models.FriendshipAccepted,
			"updatedAt": time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("accept friend request: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoFriendStore) ListIncoming(ctx context.Context, userID string) ([]models.User, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}

	edges, err := s.findEdges(ctx, bson.M{"recipientId": uid, "status": models.FriendshipPending})
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.RequesterID)
	}
	return s.resolveUsers(ctx, ids)
}

func (s *MongoFriendStore) ListOutgoing(ctx context.Context, userID string) ([]models.User, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}

	edges, err := s.findEdges(ctx, bson.M{"requesterId": uid, "status": models.FriendshipPending})
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.RecipientID)
	}
	return s.resolveUsers(ctx, ids)
}

func (s *MongoFriendStore) ListFriends(ctx context.Context, userID string) ([]models.User, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}

	edges, err := s.findEdges(ctx, bson.M{
		"status": models.FriendshipAccepted,
		"$or":    []bson.M{{"requesterId": uid}, {"recipientId": uid}},
	})
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(edges))
	for _, e := range edges {
		if e.RequesterID == uid {
			ids = append(ids, e.RecipientID)
		} else {
			ids = append(ids, e.RequesterID)
		}
	}
	return s.resolveUsers(ctx, ids)
}

func (s *MongoFriendStore) findEdges(ctx context.Context, filter bson.M) ([]models.Friendship, error) {
	cursor, err := s.friendships.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find friendships: %w", err)
	}
	defer cursor.Close(ctx)

	var edges []models.Friendship
	if err := cursor.All(ctx, &edges); err != nil {
		return nil, fmt.Errorf("decode friendships: %w", err)
	}
	return edges, nil
}

func (s *MongoFriendStore) resolveUsers(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	cursor, err := s.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("resolve users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
