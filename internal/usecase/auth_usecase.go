package usecase

import (
	"context"
	"strings"
	"time"

	"go-devconnector-backend/internal/domain"
	"go-devconnector-backend/pkg/apperror"
	"go-devconnector-backend/pkg/gravatar"
	"go-devconnector-backend/pkg/password"
	"go-devconnector-backend/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Service
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Service, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		validate: validate,
	}
}

// currentUserID resolves the authenticated user id attached by the auth
// middleware. Shared by every ownership-checked operation in this package.
func currentUserID(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return "", apperror.Unauthorized("User not authenticated")
	}
	return userID, nil
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (string, error) {
	if err := u.validate.Struct(input); err != nil {
		return "", apperror.BadRequest(err.Error())
	}

	// Email is case-normalized once here; the store's uniqueness constraint
	// then holds for all case variants.
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", apperror.Conflict("User already exists.")
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return "", apperror.Internal(err)
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     email,
		Password:  hash,
		Avatar:    gravatar.URL(email),
		CreatedAt: time.Now(),
	}

	// A concurrent registration for the same email loses here with Conflict.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	signed, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return signed, nil
}

func (u *authUsecase) Login(ctx context.Context, email, pass string) (string, error) {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", err
	}
	// Unknown email and wrong password are indistinguishable to the caller.
	if user == nil {
		return "", apperror.Unauthorized("Invalid credentials.")
	}
	if !password.Verify(pass, user.Password) {
		return "", apperror.Unauthorized("Invalid credentials.")
	}

	signed, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return signed, nil
}

func (u *authUsecase) CurrentUser(ctx context.Context) (*domain.User, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found.")
	}
	return user, nil
}
