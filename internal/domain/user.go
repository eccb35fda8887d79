package domain

import (
	"context"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required" validate:"required,valid_name"`
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" binding:"required,min=5" validate:"required,min=5"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Delete(ctx context.Context, id string) error
}

type AuthUsecase interface {
	// Register creates the user and returns a signed token for it.
	Register(ctx context.Context, input RegisterInput) (string, error)
	// Login verifies credentials and returns a signed token.
	Login(ctx context.Context, email, password string) (string, error)
	// CurrentUser resolves the authenticated user from the request context.
	CurrentUser(ctx context.Context) (*User, error)
}
