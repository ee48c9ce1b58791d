package services

import (
	"context"
	"errors"
	"time"

	"github.com/retocart/server/internal/models"
	"github.com/retocart/server/internal/store"
)

type UserService struct {
	users store.Users
	now   func() time.Time
}

func NewUserService(users store.Users) *UserService {
	return &UserService{users: users, now: time.Now}
}

// SaveResult reports whether Save inserted a new user.
type SaveResult struct {
	Created bool
	Ack     models.InsertAck
}

// Save inserts u unless a user with the same email exists. The existing
// document is never modified.
func (s *UserService) Save(ctx context.Context, u *models.User) (SaveResult, error) {
	_, err := s.users.FindByEmail(ctx, u.Email)
	if err == nil {
		return SaveResult{}, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return SaveResult{}, err
	}

	u.Verified = false
	u.CreatedAt = s.now()
	ack, err := s.users.Insert(ctx, u)
	if errors.Is(err, store.ErrDuplicate) {
		// lost a race with a concurrent save of the same email
		return SaveResult{}, nil
	}
	if err != nil {
		return SaveResult{}, err
	}
	return SaveResult{Created: true, Ack: ack}, nil
}

// Get returns nil without error for an unknown email.
func (s *UserService) Get(ctx context.Context, email string) (*models.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return u, err
}

func (s *UserService) Sellers(ctx context.Context) ([]models.User, error) {
	return s.users.FindByType(ctx, models.UserTypeSeller)
}
