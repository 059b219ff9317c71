package ports

import (
	"context"

	"github.com/smartjob/job-board/internal/core/domain"
)

// IdentityRepository persists users. Email is unique: Create returns
// domain.ErrUserExists when it is already taken.
type IdentityRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
