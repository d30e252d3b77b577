package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("test_secret")

func TestAuthUsecase_Register_IssuesToken(t *testing.T) {
	uRepo := new(UserRepoMock)
	uc := usecase.NewAuthUsecase(uRepo, testSecret)

	uRepo.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.ID != "" && u.Email == "be@example.com" && u.Role == model.RoleUser && u.PasswordHash != "matkhau123"
	})).Return(model.User{ID: "u1", Email: "be@example.com", Role: model.RoleUser}, nil)

	out, err := uc.Register(context.Background(), usecase.RegisterInput{
		Email:    "be@example.com",
		Password: "matkhau123",
		Name:     "Bé",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	// token carries sub and role
	token, err := jwt.Parse(out.Token, func(t *jwt.Token) (interface{}, error) { return testSecret, nil })
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "u1", claims["sub"])
	assert.Equal(t, "USER", claims["role"])
}

func TestAuthUsecase_Register_ShortPassword(t *testing.T) {
	uc := usecase.NewAuthUsecase(new(UserRepoMock), testSecret)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Email:    "be@example.com",
		Password: "ngan",
	})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	uRepo := new(UserRepoMock)
	uc := usecase.NewAuthUsecase(uRepo, testSecret)

	uRepo.On("Create", mock.Anything, mock.Anything).Return(model.User{}, repo.ErrConflict)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Email:    "be@example.com",
		Password: "matkhau123",
	})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 409, he.Status)
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("matkhau123"), bcrypt.MinCost)
	assert.NoError(t, err)

	uRepo := new(UserRepoMock)
	uc := usecase.NewAuthUsecase(uRepo, testSecret)

	uRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(model.User{
		ID:           "a1",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}, nil)

	out, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "admin@example.com",
		Password: "matkhau123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, model.RoleAdmin, out.User.Role)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("matkhau123"), bcrypt.MinCost)

	uRepo := new(UserRepoMock)
	uc := usecase.NewAuthUsecase(uRepo, testSecret)

	uRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(model.User{
		ID:           "a1",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "admin@example.com",
		Password: "saimatkhau",
	})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 401, he.Status)
	assert.Equal(t, "invalid credentials", he.Message)
}

func TestAuthUsecase_Login_UnknownEmailSameError(t *testing.T) {
	uRepo := new(UserRepoMock)
	uc := usecase.NewAuthUsecase(uRepo, testSecret)

	uRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(model.User{}, repo.ErrNotFound)

	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 401, he.Status)
	assert.Equal(t, "invalid credentials", he.Message)
}
