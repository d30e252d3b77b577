package repository

import (
	"context"
	"strings"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// UserMemoryRepository is the dev-mode user store, keyed by email.
type UserMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewUserMemoryRepository(seed []model.User) *UserMemoryRepository {
	r := &UserMemoryRepository{users: make(map[string]model.User)}
	for _, u := range seed {
		r.users[strings.ToLower(u.Email)] = u
	}
	return r
}

func (r *UserMemoryRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return model.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (r *UserMemoryRepository) Create(ctx context.Context, u model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, ok := r.users[key]; ok {
		return model.User{}, repo.ErrConflict
	}
	r.users[key] = u
	return u, nil
}
