package model

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Count(ctx context.Context) (int64, error)
	UpdatePassword(ctx context.Context, email string, passwordHash string) error
	UpdateProfile(ctx context.Context, email string, name string, img string) error
}

// User represents a stored account. Emails are stored lower-cased and are
// unique. PasswordHash is absent for accounts created through the OAuth
// login path.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password,omitempty" json:"-"`
	Img          string             `bson:"img,omitempty" json:"img,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"-"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"-"`
}

// Identity is the decoded claim set attached to a request after successful
// token verification. It duplicates user fields so handlers can know who is
// calling without a database read; a changed name is not reflected until
// re-login.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Img   string `json:"img,omitempty"`
}
