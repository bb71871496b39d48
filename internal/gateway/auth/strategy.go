package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/authslice/internal/common"
	"github.com/gin-gonic/gin/binding"
)

// Strategy authenticates an incoming request and yields the caller's
// identity.
type Strategy interface {
	Name() string
	Authenticate(r *http.Request) (*Identity, error)
}

// CredentialsValidator checks an email/password pair.
type CredentialsValidator interface {
	ValidateCredentials(ctx context.Context, in LoginInput) (*Identity, error)
}

// LocalStrategy reads {email, password} from the JSON body and validates it
// with the backend.
type LocalStrategy struct {
	validator CredentialsValidator
}

func NewLocalStrategy(v CredentialsValidator) *LocalStrategy {
	return &LocalStrategy{validator: v}
}

func (s *LocalStrategy) Name() string { return "local" }

func (s *LocalStrategy) Authenticate(r *http.Request) (*Identity, error) {
	var in LoginInput
	if err := binding.JSON.Bind(r, &in); err != nil {
		return nil, &common.ValidationError{Fields: []common.FieldError{{Field: "body", Message: "must be a JSON object"}}}
	}
	return s.validator.ValidateCredentials(r.Context(), in)
}

// JWTStrategy accepts a bearer session token.
type JWTStrategy struct {
	tokens *TokenService
}

func NewJWTStrategy(tokens *TokenService) *JWTStrategy {
	return &JWTStrategy{tokens: tokens}
}

func (s *JWTStrategy) Name() string { return "jwt" }

func (s *JWTStrategy) Authenticate(r *http.Request) (*Identity, error) {
	header := r.Header.Get(common.AuthorizationHeaderName)
	if header == "" {
		return nil, fmt.Errorf("%w: missing authorization header", common.ErrInvalidToken)
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("%w: malformed authorization header", common.ErrInvalidToken)
	}

	claims, err := s.tokens.Parse(strings.TrimSpace(token))
	if err != nil {
		return nil, err
	}
	id := claims.Identity()
	return &id, nil
}
