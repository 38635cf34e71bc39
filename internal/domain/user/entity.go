package user

import (
	"context"
	"time"

	"campushire/internal/domain/actor"

	"github.com/google/uuid"
)

// User is the login identity. Student and company profiles share the
// user's id, so the actor resolved from a token compares directly
// against profile ids.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         actor.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Repository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, u User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
}
