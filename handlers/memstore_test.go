package handlers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"linkup/models"
	"linkup/store"
)

// In-memory stores mirroring the mongo semantics the handlers rely on:
// pair uniqueness, accept orientation, insertion-order threads.

type memData struct {
	users map[primitive.ObjectID]models.User
	edges []models.Friendship
	msgs  []models.Message
}

func newMemData() *memData {
	return &memData{users: make(map[primitive.ObjectID]models.User)}
}

type memUserStore struct{ d *memData }

func (s *memUserStore) Create(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	s.d.users[user.ID] = *user
	return user.ID, nil
}

func (s *memUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrInvalidID
	}
	user, ok := s.d.users[oid]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &user, nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.d.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memUserStore) ListOthers(_ context.Context, excludeID string) ([]models.User, error) {
	oid, err := primitive.ObjectIDFromHex(excludeID)
	if err != nil {
		return nil, store.ErrInvalidID
	}
	var users []models.User
	for id, user := range s.d.users {
		if id != oid {
			users = append(users, user)
		}
	}
	return users, nil
}

type memFriendStore struct{ d *memData }

func (s *memFriendStore) CreateRequest(_ context.Context, fromID, toID string) error {
	from, err := primitive.ObjectIDFromHex(fromID)
	if err != nil {
		return store.ErrInvalidID
	}
	to, err := primitive.ObjectIDFromHex(toID)
	if err != nil {
		return store.ErrInvalidID
	}

	key := models.PairKey(from, to)
	for _, e := range s.d.edges {
		if e.PairKey == key {
			return store.ErrDuplicate
		}
	}

	now := time.Now()
	s.d.edges = append(s.d.edges, models.Friendship{
		ID:          primitive.NewObjectID(),
		PairKey:     key,
		RequesterID: from,
		RecipientID: to,
		Status:      models.FriendshipPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	return nil
}

func (s *memFriendStore) Accept(_ context.Context, senderID, recipientID string) error {
	sender, err := primitive.ObjectIDFromHex(senderID)
	if err != nil {
		return store.ErrInvalidID
	}
	recipient, err := primitive.ObjectIDFromHex(recipientID)
	if err != nil {
		return store.ErrInvalidID
	}

	for i, e := range s.d.edges {
		if e.RequesterID == sender && e.RecipientID == recipient && e.Status == models.FriendshipPending {
			s.d.edges[i].Status = models.FriendshipAccepted
			s.d.edges[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memFriendStore) ListIncoming(_ context.Context, userID string) ([]models.User, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, store.ErrInvalidID
	}
	users := []models.User{}
	for _, e := range s.d.edges {
		if e.RecipientID == uid && e.Status == models.FriendshipPending {
			users = append(users, s.d.users[e.RequesterID])
		}
	}
	return users, nil
}

func (s *memFriendStore) ListOutgoing(_ context.Context, userID string) ([]models.User, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, store.ErrInvalidID
	}
	users := []models.User{}
	for _, e := range s.d.edges {
		if e.RequesterID == uid && e.Status == models.FriendshipPending {
			users = append(users, s.d.users[e.RecipientID])
		}
	}
	return users, nil
}

func (s *memFriendStore) ListFriends(_ context.Context, userID string) ([]models.User, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, store.ErrInvalidID
	}
	users := []models.User{}
	for _, e := range s.d.edges {
		if e.Status != models.FriendshipAccepted {
			continue
		}
		if e.RequesterID == uid {
			users = append(users, s.d.users[e.RecipientID])
		} else if e.RecipientID == uid {
			users = append(users, s.d.users[e.RequesterID])
		}
	}
	return users, nil
}

type memMessageStore struct{ d *memData }

func (s *memMessageStore) Insert(_ context.Context, msg *models.Message) (primitive.ObjectID, error) {
	msg.ID = primitive.NewObjectID()
	if msg.TimeStamp.IsZero() {
		msg.TimeStamp = time.Now()
	}
	s.d.msgs = append(s.d.msgs, *msg)
	return msg.ID, nil
}

func (s *memMessageStore) Thread(_ context.Context, userA, userB string) ([]models.ThreadMessage, error) {
	a, err := primitive.ObjectIDFromHex(userA)
	if err != nil {
		return nil, store.ErrInvalidID
	}
	b, err := primitive.ObjectIDFromHex(userB)
	if err != nil {
		return nil, store.ErrInvalidID
	}

	thread := []models.ThreadMessage{}
	for _, m := range s.d.msgs {
		if (m.SenderID == a && m.RecepientID == b) || (m.SenderID == b && m.RecepientID == a) {
			thread = append(thread, models.ThreadMessage{
				ID:          m.ID,
				Sender:      models.MessageSender{ID: m.SenderID, Name: s.d.users[m.SenderID].Name},
				RecepientID: m.RecepientID,
				MessageType: m.MessageType,
				Message:     m.Message,
				ImageURL:    m.ImageURL,
				TimeStamp:   m.TimeStamp,
			})
		}
	}
	return thread, nil
}

func (s *memMessageStore) DeleteMany(_ context.Context, ids []string) (int64, error) {
	oids := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return 0, store.ErrInvalidID
		}
		oids[oid] = true
	}

	var kept []models.Message
	var deleted int64
	for _, m := range s.d.msgs {
		if oids[m.ID] {
			deleted++
			continue
		}
		kept = append(kept, m)
	}
	s.d.msgs = kept
	return deleted, nil
}
