// Package services contains server-side business logic. UserService handles
// signup, login and profile lookups; the auth service uses the first two, the
// user service the last.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mpetrov/dashauth/internal/common"
	"github.com/mpetrov/dashauth/internal/server/config"
	"github.com/mpetrov/dashauth/internal/server/models"
	"github.com/mpetrov/dashauth/internal/server/repositories/users"
	"github.com/mpetrov/dashauth/internal/server/token"
)

// bcryptCost is the password hashing work factor: slow enough to resist
// brute force, bounded for interactive latency.
const bcryptCost = 12

// UserView is the externally visible subset of a user record. The password
// hash is deliberately not representable here.
type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResult bundles a freshly issued token with the public view of the user.
type AuthResult struct {
	Token string
	User  UserView
}

type UserService struct {
	repo                users.Repository
	secretKey           []byte
	signupTokenValidity time.Duration
	loginTokenValidity  time.Duration
}

func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                repo,
		secretKey:           []byte(cfg.SecretKey),
		signupTokenValidity: cfg.SignupTokenValidity,
		loginTokenValidity:  cfg.LoginTokenValidity,
	}
}

// NormalizeEmail returns the canonical form used for uniqueness and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates a user record with a bcrypt password hash and issues a
// token. The pre-check gives the common duplicate case a clean answer; the
// store's uniqueness constraint settles concurrent signups, and both paths
// surface common.ErrorAlreadyExists.
func (s *UserService) SignUp(ctx context.Context, name, email, password string) (*AuthResult, error) {

	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("%w: checking existing email: %w", common.ErrorInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %w", common.ErrorInternal, err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("%w: creating user: %w", common.ErrorInternal, err)
	}

	return s.authResult(user, s.signupTokenValidity)
}

// Login verifies the submitted password against the stored hash. An unknown
// email and a wrong password return the same error so the caller cannot
// probe which accounts exist. The hash comparison is constant-time (bcrypt).
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {

	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("%w: finding user: %w", common.ErrorInternal, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}

	return s.authResult(user, s.loginTokenValidity)
}

// Profile returns the public view for the given user id. A valid token whose
// subject no longer exists yields common.ErrorNotFound (fail-closed).
func (s *UserService) Profile(ctx context.Context, id string) (*UserView, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: finding user: %w", common.ErrorInternal, err)
	}

	v := view(user)
	return &v, nil
}

func (s *UserService) authResult(user *models.User, validity time.Duration) (*AuthResult, error) {
	t, err := token.Issue(user.ID, user.Email, user.Name, s.secretKey, validity)
	if err != nil {
		return nil, fmt.Errorf("%w: issuing token: %w", common.ErrorInternal, err)
	}
	return &AuthResult{Token: t, User: view(user)}, nil
}

func view(user *models.User) UserView {
	return UserView{ID: user.ID, Name: user.Name, Email: user.Email}
}
