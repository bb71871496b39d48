package users

import (
	"context"
)

// Repository is the credential store. Implementations enforce email
// uniqueness themselves: Create returns common.ErrAlreadyRegistered when the
// email is taken, GetUserByEmail returns common.ErrorNotFound for unknown
// emails.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}
