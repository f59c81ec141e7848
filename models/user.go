package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Profile is the projection returned by list and friend endpoints;
// it never carries the password hash.
type Profile struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Image string             `json:"image,omitempty"`
}

func (u *User) ToProfile() *Profile {
	return &Profile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Image: u.Image,
	}
}

func ToProfiles(users []User) []Profile {
	profiles := make([]Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, *users[i].ToProfile())
	}
	return profiles
}
