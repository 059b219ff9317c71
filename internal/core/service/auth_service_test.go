package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/smartjob/job-board/internal/core/domain"
)

func newTestAuthService(t *testing.T) (*AuthService, *stubIdentityRepo, *TokenService) {
	t.Helper()
	repo := newStubIdentityRepo()
	tokens := NewTokenService(TokenConfig{Secret: testSecret, TTL: time.Hour})
	return NewAuthService(repo, NewBcryptHasher(bcrypt.MinCost), tokens, discardLogger), repo, tokens
}

func TestAuthService_RegisterLoginScenario(t *testing.T) {
	svc, repo, tokens := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "a@x.com", "pw1", "ROLE_USER")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" || user.Role != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", user)
	}

	body, _ := json.Marshal(user)
	if strings.Contains(string(body), "password") || strings.Contains(string(body), "$2") {
		t.Errorf("serialized user leaks the credential: %s", body)
	}
	if stored := repo.byEmail["a@x.com"]; stored.PasswordHash == "pw1" {
		t.Error("password stored in plain text")
	}

	if _, err := svc.Register(ctx, "a@x.com", "pw1", "ROLE_USER"); !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("duplicate register: expected ErrUserExists, got %v", err)
	}

	token, _, err := svc.Login(ctx, "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Subject != "a@x.com" || claims.Role != domain.RoleUser {
		t.Errorf("unexpected claims: %+v", claims)
	}

	if _, _, err := svc.Login(ctx, "a@x.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_LoginUnknownEmailIsIndistinguishable(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "known@x.com", "pw1", "ROLE_USER"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, errUnknown := svc.Login(ctx, "ghost@x.com", "pw1")
	_, _, errWrong := svc.Login(ctx, "known@x.com", "nope")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) || !errors.Is(errWrong, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v / %v", errUnknown, errWrong)
	}
	if errUnknown.Error() != errWrong.Error() {
		t.Errorf("failure messages differ: %q vs %q", errUnknown, errWrong)
	}
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	cases := []struct {
		name, email, password, role string
		want                        error
	}{
		{"blank email", "  ", "pw1", "ROLE_USER", domain.ErrInvalidInput},
		{"blank password", "a@x.com", "", "ROLE_USER", domain.ErrInvalidInput},
		{"password over 72 bytes", "a@x.com", strings.Repeat("é", 40), "ROLE_USER", domain.ErrInvalidInput},
		{"unknown role", "a@x.com", "pw1", "ROLE_ROOT", domain.ErrInvalidRole},
		{"lowercase role", "a@x.com", "pw1", "role_user", domain.ErrInvalidRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tc.email, tc.password, tc.role); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAuthService_RegisterMultibytePasswordAtLimit(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	password := strings.Repeat("é", 36)
	if _, err := svc.Register(ctx, "a@x.com", password, "ROLE_USER"); err != nil {
		t.Fatalf("register with a 72-byte password: %v", err)
	}
	if _, _, err := svc.Login(ctx, "a@x.com", password); err != nil {
		t.Errorf("login: %v", err)
	}
}

func TestAuthService_RegisterTrimsEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "  r@x.com ", "pw1", "ROLE_RECRUITER"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Login(ctx, "r@x.com", "pw1"); err != nil {
		t.Errorf("login with trimmed email: %v", err)
	}
}

func TestAuthService_LoginRepositoryError(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	repo.findErr = errors.New("connection reset")

	_, _, err := svc.Login(context.Background(), "a@x.com", "pw1")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected store error to surface, got %v", err)
	}
}

func TestAuthService_Me(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	created, _ := svc.Register(ctx, "a@x.com", "pw1", "ROLE_USER")

	user, err := svc.Me(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("id = %q, want %q", user.ID, created.ID)
	}

	if _, err := svc.Me(ctx, "gone@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
