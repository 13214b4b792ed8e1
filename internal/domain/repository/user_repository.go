package repository

import (
	"context"

	"github.com/aqualife/aqualife-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para usuarios internos.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
