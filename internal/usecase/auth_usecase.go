package usecase

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const accessTTL = 15 * time.Minute

// AuthUsecase handles register and login with HS256 access tokens.
type AuthUsecase struct {
	userRepo repo.UserRepository
	secret   []byte
}

// DI
func NewAuthUsecase(userRepo repo.UserRepository, secret []byte) *AuthUsecase {
	return &AuthUsecase{
		userRepo: userRepo,
		secret:   secret,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthOutput struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	User      model.User `json:"user"`
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (AuthOutput, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || !isEmailLike(email) {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if len(in.Password) < 8 {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "password too short")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	user, err := u.userRepo.Create(ctx, model.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	})
	if errors.Is(err, repo.ErrConflict) {
		return AuthOutput{}, NewHTTPError(http.StatusConflict, "email already registered")
	}
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.issue(user)
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (AuthOutput, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "email and password required")
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return AuthOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return AuthOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	return u.issue(user)
}

func (u *AuthUsecase) issue(user model.User) (AuthOutput, error) {
	now := time.Now()
	expiresAt := now.Add(accessTTL)

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(u.secret)
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	return AuthOutput{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isEmailLike(s string) bool {
	return emailRe.MatchString(s)
}
