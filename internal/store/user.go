package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nandita/prepwise/ent"
	"github.com/nandita/prepwise/ent/user"
)

type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, email, name, passwordHash string) (*User, error) {
	u, err := r.client.User.Create().
		SetEmail(strings.ToLower(strings.TrimSpace(email))).
		SetName(name).
		SetPasswordHash(passwordHash).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return mapUser(u), nil
}

func (r *userRepo) ByEmail(ctx context.Context, email string) (*User, error) {
	u, err := r.client.User.Query().
		Where(user.EmailEQ(strings.ToLower(strings.TrimSpace(email)))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return mapUser(u), nil
}

func (r *userRepo) ByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query user by id: %w", err)
	}
	return mapUser(u), nil
}

func mapUser(u *ent.User) *User {
	return &User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}
