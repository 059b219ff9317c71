package middleware

import (
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smartjob/job-board/internal/core/domain"
	"github.com/smartjob/job-board/internal/core/service"
	"github.com/smartjob/job-board/internal/pkg/metrics"
)

// PrincipalKey is the echo.Context key holding the authenticated *domain.Principal.
const PrincipalKey = "principal"

// TokenValidator is the token service as seen by the access filter.
type TokenValidator interface {
	Validate(token string) (*service.Claims, error)
}

// Auth validates the bearer token of every non-public request and binds the
// caller's {subject, role} to the context. Every failure answers with the same
// domain.ErrUnauthenticated so clients cannot tell an expired token from a
// forged one. No store is consulted: the role travels in the token.
func Auth(tokens TokenValidator, policy *Policy, log zerolog.Logger) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		Skipper:    policy.Skipper,
		ContextKey: PrincipalKey,
		ParseTokenFunc: func(_ echo.Context, auth string) (any, error) {
			claims, err := tokens.Validate(auth)
			if err != nil {
				return nil, err
			}
			return &domain.Principal{Subject: claims.Subject, Role: claims.Role}, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			reason := failureReason(err)
			metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
			log.Debug().
				Str("reason", reason).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("request rejected by access filter")
			return domain.ErrUnauthenticated
		},
	})
}

// PrincipalFrom returns the principal bound by Auth, or nil on public routes.
func PrincipalFrom(c echo.Context) *domain.Principal {
	p, _ := c.Get(PrincipalKey).(*domain.Principal)
	return p
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenBadSignature):
		return "bad_signature"
	case errors.Is(err, domain.ErrTokenMalformed):
		return "malformed"
	default:
		return "missing"
	}
}
