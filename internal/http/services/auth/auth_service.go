// Package auth implementa sign-in y sign-out sobre password, jwt y la
// cache de sesiones.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dropDatabas3/rbac-admin/internal/audit"
	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
	dto "github.com/dropDatabas3/rbac-admin/internal/http/dto/auth"
	"github.com/dropDatabas3/rbac-admin/internal/jwt"
	"github.com/dropDatabas3/rbac-admin/internal/metrics"
	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"
	"github.com/dropDatabas3/rbac-admin/internal/rbac"
	"github.com/dropDatabas3/rbac-admin/internal/security/password"
	"github.com/dropDatabas3/rbac-admin/internal/session"
)

var (
	// ErrAuthentication: the password does not match the stored hash.
	ErrAuthentication = errors.New("authentication failed")

	// ErrMalformedToken: the Authorization value has no second
	// whitespace-separated field.
	ErrMalformedToken = errors.New("malformed bearer token")
)

type Service interface {
	// SignIn returns the cached token for userName when one is live;
	// otherwise it checks the password and issues a fresh token.
	SignIn(ctx context.Context, in dto.SignInRequest) (string, error)

	// SignOut verifies the bearer token and drops its session entry.
	// It returns the user name of the removed session.
	SignOut(ctx context.Context, authorization string) (string, error)

	MenusForCodes(ctx context.Context, codes []string) ([]repository.Menu, error)
}

type Deps struct {
	Users    repository.UserRepository
	Issuer   *jwt.Issuer
	Sessions session.Store
	Resolver *rbac.Resolver
	Metrics  *metrics.Metrics
	Now      func() time.Time
}

type service struct {
	deps Deps
}

func NewService(d Deps) Service {
	if d.Now == nil {
		d.Now = time.Now
	}
	return &service{deps: d}
}

func (s *service) SignIn(ctx context.Context, in dto.SignInRequest) (string, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth"),
		logger.Op("SignIn"),
	)

	in.UserName = strings.TrimSpace(in.UserName)
	if in.UserName == "" || in.Password == "" {
		return "", fmt.Errorf("%w: userName and password are required", repository.ErrInvalidInput)
	}
	log = log.With(logger.UserName(in.UserName))

	// 1. Cache: a live token is handed back without re-checking the password.
	tok, ok, err := s.deps.Sessions.Get(ctx, in.UserName)
	if err != nil {
		log.Warn("session lookup failed, falling back to credentials", logger.Err(err))
	} else if ok {
		s.deps.Metrics.ObserveSignIn(metrics.ResultCached)
		log.Debug("session hit")
		return tok, nil
	}

	// 2. Lookup
	cred, err := s.deps.Users.GetCredential(ctx, in.UserName)
	if err != nil {
		result := metrics.ResultError
		if repository.IsNotFound(err) {
			result = metrics.ResultNotFound
		}
		s.deps.Metrics.ObserveSignIn(result)
		return "", fmt.Errorf("sign in: %w", err)
	}

	// 3. Verify
	if !password.Verify(in.Password, cred.PasswordHash) {
		s.deps.Metrics.ObserveSignIn(metrics.ResultBadCredentials)
		log.Info("password mismatch")
		return "", ErrAuthentication
	}

	// 4. Issue + cache
	token, exp, err := s.deps.Issuer.Issue(cred.UserID, in.UserName)
	if err != nil {
		s.deps.Metrics.ObserveSignIn(metrics.ResultError)
		log.Error("token signing failed", logger.Err(err))
		return "", err
	}
	if err := s.deps.Sessions.Put(ctx, in.UserName, token, exp); err != nil {
		s.deps.Metrics.ObserveSignIn(metrics.ResultError)
		return "", fmt.Errorf("sign in: cache token: %w", err)
	}

	if err := s.deps.Users.TouchLastLogin(ctx, cred.UserID, s.deps.Now()); err != nil {
		log.Warn("last login not recorded", logger.Err(err))
	}

	s.deps.Metrics.ObserveSignIn(metrics.ResultOK)
	log.Info("signed in", logger.UserID(cred.UserID))
	audit.Log(ctx, audit.EventSignIn, logger.UserID(cred.UserID), logger.UserName(in.UserName))
	return token, nil
}

func (s *service) SignOut(ctx context.Context, authorization string) (string, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth"),
		logger.Op("SignOut"),
	)

	raw, err := BearerToken(authorization)
	if err != nil {
		s.deps.Metrics.ObserveSignOut("malformed")
		return "", err
	}

	claims, err := s.deps.Issuer.Verify(raw)
	if err != nil {
		s.deps.Metrics.ObserveSignOut("invalid_token")
		return "", err
	}

	_, ok, err := s.deps.Sessions.Remove(ctx, claims.UserName)
	if err != nil {
		s.deps.Metrics.ObserveSignOut(metrics.ResultError)
		return "", fmt.Errorf("sign out: %w", err)
	}
	if !ok {
		s.deps.Metrics.ObserveSignOut(metrics.ResultNotFound)
		return "", fmt.Errorf("sign out: no session for %q: %w", claims.UserName, repository.ErrNotFound)
	}

	s.deps.Metrics.ObserveSignOut(metrics.ResultOK)
	log.Info("signed out", logger.UserName(claims.UserName))
	audit.Log(ctx, audit.EventSignOut, logger.UserName(claims.UserName))
	return claims.UserName, nil
}

func (s *service) MenusForCodes(ctx context.Context, codes []string) ([]repository.Menu, error) {
	return s.deps.Resolver.ResolveMenusByAuthCodes(ctx, codes)
}

// BearerToken extracts the second whitespace-separated field of an
// Authorization value. The scheme word itself is not checked.
func BearerToken(authorization string) (string, error) {
	parts := strings.Fields(authorization)
	if len(parts) < 2 {
		return "", ErrMalformedToken
	}
	return parts[1], nil
}
