package ports

import (
	"context"

	"github.com/smartjob/job-board/internal/core/domain"
)

// AuthService registers identities and exchanges credentials for bearer tokens.
type AuthService interface {
	Register(ctx context.Context, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Me(ctx context.Context, email string) (*domain.User, error)
}
