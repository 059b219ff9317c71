package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/smartjob/job-board/internal/core/domain"
	"github.com/smartjob/job-board/internal/pkg/metrics"
)

// Rule maps a request shape to who may make it.
//
// Pattern is either an exact path or a prefix ending in "/**", which matches the
// prefix itself and everything below it. An empty Method matches any method.
// A non-public rule with no Roles admits any authenticated caller.
type Rule struct {
	Method  string
	Pattern string
	Public  bool
	Roles   []domain.Role
}

func (r Rule) matches(method, path string) bool {
	if r.Method != "" && r.Method != method {
		return false
	}
	if prefix, ok := strings.CutSuffix(r.Pattern, "/**"); ok {
		return prefix == "" || path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == r.Pattern
}

func (r Rule) admits(role domain.Role) bool {
	if len(r.Roles) == 0 {
		return true
	}
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Policy is an ordered rule list evaluated first match wins. It holds no mutable
// state and is safe for concurrent use.
type Policy struct {
	rules []Rule
}

func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// DefaultPolicy is the route table of the job board API.
func DefaultPolicy() *Policy {
	return NewPolicy(
		Rule{Pattern: "/api/users/register", Public: true},
		Rule{Pattern: "/api/users/login", Public: true},
		Rule{Method: http.MethodOptions, Pattern: "/**", Public: true},
		Rule{Method: http.MethodGet, Pattern: "/health/**", Public: true},
		Rule{Method: http.MethodGet, Pattern: "/metrics", Public: true},
		Rule{Method: http.MethodGet, Pattern: "/swagger/**", Public: true},
		Rule{Pattern: "/api/jobs/**", Roles: []domain.Role{domain.RoleUser, domain.RoleRecruiter}},
		Rule{Pattern: "/api/profiles/**", Roles: []domain.Role{domain.RoleUser}},
		Rule{Pattern: "/**"},
	)
}

func (p *Policy) match(method, path string) (Rule, bool) {
	for _, r := range p.rules {
		if r.matches(method, path) {
			return r, true
		}
	}
	return Rule{}, false
}

// IsPublic reports whether the request needs no identity.
func (p *Policy) IsPublic(method, path string) bool {
	r, ok := p.match(method, path)
	return ok && r.Public
}

// Skipper lets public requests bypass token validation.
func (p *Policy) Skipper(c echo.Context) bool {
	return p.IsPublic(c.Request().Method, c.Request().URL.Path)
}

// Check returns nil when principal may make the request, domain.ErrUnauthenticated
// when an identity is required but absent, and domain.ErrForbidden when the identity
// is known but its role is not admitted. A request no rule covers is denied.
func (p *Policy) Check(principal *domain.Principal, method, path string) error {
	r, ok := p.match(method, path)
	if ok && r.Public {
		return nil
	}
	if principal == nil {
		return domain.ErrUnauthenticated
	}
	if !ok || !r.admits(principal.Role) {
		return domain.ErrForbidden
	}
	return nil
}

// Authorize enforces the policy against the principal bound by Auth.
func Authorize(policy *Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := PrincipalFrom(c)
			if err := policy.Check(principal, c.Request().Method, c.Request().URL.Path); err != nil {
				if principal != nil {
					metrics.AuthorizationDeniedTotal.WithLabelValues(string(principal.Role)).Inc()
				}
				return err
			}
			return next(c)
		}
	}
}
