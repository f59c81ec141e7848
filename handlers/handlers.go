package handlers

import "linkup/store"

type Handler struct {
	Users    store.UserStore
	Friends  store.FriendStore
	Messages store.MessageStore
}

func New(users store.UserStore, friends store.FriendStore, messages store.MessageStore) *Handler {
	return &Handler{Users: users, Friends: friends, Messages: messages}
}
