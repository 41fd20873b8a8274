package repository

import (
	"context"

	"github.com/devfolio/backend/internal/model"
)

// DB is the minimal liveness interface the health endpoint needs.
type DB interface {
	Ping(ctx context.Context) error
}

// UserRepository persists dashboard accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	UpsertByEmail(ctx context.Context, user *model.User) error
}
