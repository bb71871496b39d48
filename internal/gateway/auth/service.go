package auth

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/authslice/internal/logging"
	"github.com/dmitrijs2005/authslice/internal/rpc"
	"github.com/dmitrijs2005/authslice/internal/validation"
)

// Backend is the subset of the authentication backend the gateway calls.
type Backend interface {
	RegisterUser(ctx context.Context, name, email, password string) (*rpc.User, error)
	GetUsers(ctx context.Context) (*rpc.GetUsersReply, error)
	ValidateUser(ctx context.Context, email, password string) (*rpc.User, error)
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is returned to the caller after a successful login.
type LoginResult struct {
	AccessToken string   `json:"access_token"`
	User        Identity `json:"user"`
}

type Service struct {
	backend Backend
	tokens  *TokenService
	logger  logging.Logger
}

func NewService(backend Backend, tokens *TokenService, l logging.Logger) *Service {
	return &Service{backend: backend, tokens: tokens, logger: l.With("module", "auth_service")}
}

// Register rejects malformed input locally and forwards the rest.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*rpc.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	u, err := s.backend.RegisterUser(ctx, in.Name, in.Email, in.Password)
	if err != nil {
		s.logger.Warn(ctx, "registration failed", "email", in.Email, "error", err.Error())
		return nil, err
	}
	s.logger.Info(ctx, "user registered", "id", u.ID)
	return u, nil
}

func (s *Service) ListUsers(ctx context.Context) (*rpc.GetUsersReply, error) {
	reply, err := s.backend.GetUsers(ctx)
	if err != nil {
		s.logger.Error(ctx, "list users failed", "error", err.Error())
		return nil, err
	}
	return reply, nil
}

// ValidateCredentials asks the backend whether the pair is valid.
func (s *Service) ValidateCredentials(ctx context.Context, in LoginInput) (*Identity, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	u, err := s.backend.ValidateUser(ctx, in.Email, in.Password)
	if err != nil {
		s.logger.Warn(ctx, "credential validation failed", "email", in.Email, "error", err.Error())
		return nil, err
	}
	return &Identity{ID: u.ID, Email: u.Email, Name: u.Name}, nil
}

// Login mints a session token for an identity already authenticated by a
// strategy.
func (s *Service) Login(ctx context.Context, id Identity) (*LoginResult, error) {
	token, err := s.tokens.Issue(id)
	if err != nil {
		s.logger.Error(ctx, "token issue failed", "error", err.Error())
		return nil, err
	}
	s.logger.Info(ctx, "user logged in", "id", id.ID)
	return &LoginResult{AccessToken: token, User: id}, nil
}
