// Package users implements user registration, listing and credential
// validation on top of a Repository.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/authslice/internal/common"
	"github.com/dmitrijs2005/authslice/internal/logging"
	"github.com/dmitrijs2005/authslice/internal/validation"
)

type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

type CredentialsInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Service struct {
	repo         Repository
	hasher       Hasher
	storeTimeout time.Duration
	logger       logging.Logger
}

// NewService builds a Service. A zero storeTimeout leaves store calls bounded
// only by the caller's context.
func NewService(repo Repository, hasher Hasher, storeTimeout time.Duration, l logging.Logger) *Service {
	return &Service{
		repo:         repo,
		hasher:       hasher,
		storeTimeout: storeTimeout,
		logger:       l.With("module", "users_service"),
	}
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}

// storeFailure logs a store error and hides it behind ErrStoreUnavailable.
// If the caller has already gone away its context error is returned instead.
func (s *Service) storeFailure(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	s.logger.Error(ctx, "store failure", "op", op, "error", err.Error())
	return fmt.Errorf("%s: %w", op, common.ErrStoreUnavailable)
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	sctx, cancel := s.storeContext(ctx)
	_, err := s.repo.GetUserByEmail(sctx, in.Email)
	cancel()
	switch {
	case err == nil:
		s.logger.Warn(ctx, "registration with existing email", "email", in.Email)
		return nil, common.ErrAlreadyRegistered
	case !errors.Is(err, common.ErrorNotFound):
		return nil, s.storeFailure(ctx, "find user", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err.Error())
		return nil, common.ErrorInternal
	}

	sctx, cancel = s.storeContext(ctx)
	defer cancel()
	created, err := s.repo.Create(sctx, &User{Name: in.Name, Email: in.Email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyRegistered) {
			// lost a race with a concurrent registration
			s.logger.Warn(ctx, "duplicate user rejected by store", "email", in.Email)
			return nil, common.ErrAlreadyRegistered
		}
		return nil, s.storeFailure(ctx, "create user", err)
	}

	s.logger.Info(ctx, "user registered", "id", created.ID, "email", created.Email)
	return created.withoutHash(), nil
}

// List returns every stored user. An empty store yields an empty, non-nil
// slice.
func (s *Service) List(ctx context.Context) ([]*User, error) {
	sctx, cancel := s.storeContext(ctx)
	defer cancel()

	stored, err := s.repo.List(sctx)
	if err != nil {
		return nil, s.storeFailure(ctx, "list users", err)
	}

	result := make([]*User, 0, len(stored))
	for _, u := range stored {
		result = append(result, u.withoutHash())
	}
	return result, nil
}

// Validate checks a credential claim and returns the matching user.
func (s *Service) Validate(ctx context.Context, in CredentialsInput) (*User, error) {
	in.Email = NormalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	sctx, cancel := s.storeContext(ctx)
	defer cancel()

	user, err := s.repo.GetUserByEmail(sctx, in.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "login attempt with unknown email", "email", in.Email)
			return nil, common.ErrEmailNotRegistered
		}
		return nil, s.storeFailure(ctx, "find user", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, in.Password); err != nil {
		if errors.Is(err, common.ErrInvalidPassword) {
			s.logger.Warn(ctx, "invalid password attempt", "email", in.Email)
			return nil, common.ErrInvalidPassword
		}
		s.logger.Error(ctx, "password comparison failed", "id", user.ID, "error", err.Error())
		return nil, common.ErrorInternal
	}

	return user.withoutHash(), nil
}
