package usecase_test

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	updated, _ := args.Get(0).(model.Product)
	return updated, args.Error(1)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) Get(ctx context.Context, userID string) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) Save(ctx context.Context, userID string, c model.Cart) error {
	args := m.Called(ctx, userID, c)
	return args.Error(0)
}

func (m *CartRepoMock) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	created, _ := args.Get(0).(model.User)
	return created, args.Error(1)
}

// compile-time interface checks
var (
	_ repo.ProductRepository = (*ProductRepoMock)(nil)
	_ repo.CartRepository    = (*CartRepoMock)(nil)
	_ repo.UserRepository    = (*UserRepoMock)(nil)
)
