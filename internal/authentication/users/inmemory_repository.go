package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/authslice/internal/common"
	"github.com/google/uuid"
)

// InMemoryRepository keeps users in process memory. Creation is serialized,
// so the email check and the insert are atomic.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*User
	ordered []*User
	now     func() time.Time
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byEmail: make(map[string]*User), now: time.Now}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrAlreadyRegistered
	}

	stored := &User{
		ID:           uuid.NewString(),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    r.now().UTC(),
	}
	r.byEmail[stored.Email] = stored
	r.ordered = append(r.ordered, stored)

	c := *stored
	return &c, nil
}

func (r *InMemoryRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*User, 0, len(r.ordered))
	for _, u := range r.ordered {
		c := *u
		result = append(result, &c)
	}
	return result, nil
}
