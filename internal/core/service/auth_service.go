package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartjob/job-board/internal/core/domain"
	"github.com/smartjob/job-board/internal/core/ports"
	"github.com/smartjob/job-board/internal/pkg/metrics"
)

// maxPasswordBytes is bcrypt's input limit. It counts bytes, not characters.
const maxPasswordBytes = 72

// PasswordHasher is the credential manager used by AuthService.
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, digest string) bool
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(subject string, role domain.Role) (string, error)
}

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.IdentityRepository
	hasher PasswordHasher
	tokens TokenIssuer
	log    zerolog.Logger

	// decoy is compared against when the email is unknown so both login failures cost
	// the same bcrypt round.
	decoyOnce sync.Once
	decoy     string
}

func NewAuthService(repo ports.IdentityRepository, hasher PasswordHasher, tokens TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

func (s *AuthService) Register(ctx context.Context, email, password, role string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" || len(password) > maxPasswordBytes {
		return nil, domain.ErrInvalidInput
	}
	r, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         r,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login never reveals whether the email exists: an unknown email and a wrong
// password both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.hasher.Verify(password, s.decoyDigest())
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

// Me returns the identity behind an authenticated subject.
func (s *AuthService) Me(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, normalizeEmail(email))
}

func (s *AuthService) decoyDigest() string {
	s.decoyOnce.Do(func() {
		d, err := s.hasher.Hash("decoy-password-for-timing")
		if err != nil {
			s.log.Warn().Err(err).Msg("failed to build decoy digest")
			return
		}
		s.decoy = d
	})
	return s.decoy
}

// normalizeEmail trims whitespace. Case is preserved: the handle is matched exactly.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
