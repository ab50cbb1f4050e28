package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shivsegv/campussetu/internal/common"
	"github.com/shivsegv/campussetu/internal/domain/model"
	"github.com/shivsegv/campussetu/internal/domain/seed"
	"github.com/shivsegv/campussetu/internal/platform/store"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*model.User, error)
	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// Create rejects a duplicate email (case-insensitive) with ErrDuplicateEmail
	// and allocates the user's id; the check and the append run under the same
	// writer lock.
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user model.User) error
}

type storeUserRepository struct {
	c *collection[model.User]
}

func NewStoreUserRepository(st store.Store) UserRepository {
	return &storeUserRepository{c: newCollection[model.User](st, "users", seed.Version, seed.Users)}
}

func (r *storeUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var found *model.User
	err := r.c.View(ctx, func(items []model.User) error {
		for i := range items {
			if items[i].ID == id {
				u := items[i]
				found = &u
				return nil
			}
		}
		return common.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *storeUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var found *model.User
	err := r.c.View(ctx, func(items []model.User) error {
		for i := range items {
			if strings.EqualFold(items[i].Email, email) {
				u := items[i]
				found = &u
				return nil
			}
		}
		return common.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *storeUserRepository) Create(ctx context.Context, user *model.User) error {
	err := r.c.Update(ctx, func(items []model.User) ([]model.User, error) {
		for i := range items {
			if strings.EqualFold(items[i].Email, user.Email) {
				return nil, common.ErrDuplicateEmail
			}
		}
		user.ID = nextID(items, func(u model.User) int64 { return u.ID })
		return append(items, *user), nil
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return err
		}
		return fmt.Errorf("storeUserRepository.Create: %w", err)
	}
	return nil
}

func (r *storeUserRepository) Update(ctx context.Context, user model.User) error {
	return r.c.Update(ctx, func(items []model.User) ([]model.User, error) {
		for i := range items {
			if items[i].ID == user.ID {
				items[i] = user
				return items, nil
			}
		}
		return nil, common.ErrNotFound
	})
}
