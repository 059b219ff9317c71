package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smartjob/job-board/internal/api/middleware"
	"github.com/smartjob/job-board/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password, role string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	meFn       func(ctx context.Context, email string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password, role string) (*domain.User, error) {
	return s.registerFn(ctx, email, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Me(ctx context.Context, email string) (*domain.User, error) {
	return s.meFn(ctx, email)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func asHTTPError(t *testing.T, err error) *echo.HTTPError {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, email, password, role string) (*domain.User, error) {
			if email != "a@x.com" || password != "pw1" || role != "ROLE_USER" {
				t.Fatalf("unexpected args: %s %s %s", email, password, role)
			}
			return &domain.User{ID: "u1", Email: email, PasswordHash: "$2a$10$hash", Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	c, rec := jsonContext(e, http.MethodPost, "/api/users/register", `{"email":"a@x.com","password":"pw1","role":"ROLE_USER"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "password") || strings.Contains(rec.Body.String(), "$2a$") {
		t.Fatalf("credential leaked: %s", rec.Body.String())
	}

	var user map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user["email"] != "a@x.com" || user["role"] != "ROLE_USER" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}

	c, _ := jsonContext(e, http.MethodPost, "/api/users/register", `{"email":"a@x.com","password":"pw1","role":"ROLE_USER"}`)
	if err := NewAuthHandler(stub, time.Hour).Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string) (*domain.User, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	cases := map[string]string{
		"missing email": `{"password":"pw1","role":"ROLE_USER"}`,
		"bad email":     `{"email":"nope","password":"pw1","role":"ROLE_USER"}`,
		"unknown role":  `{"email":"a@x.com","password":"pw1","role":"ROLE_ROOT"}`,
		"long password": `{"email":"a@x.com","password":"` + strings.Repeat("x", 73) + `","role":"ROLE_USER"}`,
		"not json":      `{`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := jsonContext(e, http.MethodPost, "/api/users/register", body)
			if he := asHTTPError(t, h.Register(c)); he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", he.Code)
			}
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			return "signed.jwt.token", &domain.User{ID: "u1", Email: email, Role: domain.RoleUser}, nil
		},
	}

	c, rec := jsonContext(e, http.MethodPost, "/api/users/login", `{"email":"a@x.com","password":"pw1"}`)
	if err := NewAuthHandler(stub, 24*time.Hour).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "signed.jwt.token" || resp.TokenType != "Bearer" || resp.ExpiresIn != 86400 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.User == nil || resp.User.Email != "a@x.com" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}

	c, _ := jsonContext(e, http.MethodPost, "/api/users/login", `{"email":"a@x.com","password":"wrong"}`)
	if err := NewAuthHandler(stub, time.Hour).Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		meFn: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "u1", Email: email, Role: domain.RoleRecruiter}, nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	c, rec := jsonContext(e, http.MethodGet, "/api/users/me", "")
	c.Set(middleware.PrincipalKey, &domain.Principal{Subject: "r@x.com", Role: domain.RoleRecruiter})
	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"r@x.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	anon, _ := jsonContext(e, http.MethodGet, "/api/users/me", "")
	if err := h.Me(anon); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated without a principal, got %v", err)
	}
}
