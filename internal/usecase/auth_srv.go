package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.SignUpRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAuthService(repo *repository.Repository, log *zap.Logger) AuthService {
	return &authService{
		repo: repo,
		log:  log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.SignUpRequest) (*response.UserResponse, error) {
	// 1. Check email is not taken (exact match, checked before username)
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, ErrEmailTaken
	}

	// 2. Check username is not taken
	existingUser, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUsernameTaken
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. Create user entity
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	// 5. Save user. The unique indexes close the race between the checks
	// above and the insert, so a concurrent duplicate still surfaces as
	// the same taken error.
	if err := s.repo.User.Create(ctx, user); err != nil {
		var dup *repository.ErrDuplicate
		if errors.As(err, &dup) {
			if dup.Field == "email" {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	// 6. Issue the user's auth token, one per user, bound at sign-up
	token := &entity.Token{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID: user.ID,
		Token:  uuid.New(),
	}
	if err := s.repo.Token.Create(ctx, token); err != nil {
		s.log.Error("Failed to create token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("create token: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Find user by exact email. Unknown email and wrong password both
	// fail with the same message so accounts cannot be enumerated.
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("Login with unknown email", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	// 2. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// 3. Return the existing token
	token, err := s.repo.Token.FindByUserID(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to find token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("find token: %w", err)
	}
	if token == nil {
		// Tokens are issued at sign-up; reissue if the row is missing
		token = &entity.Token{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			UserID: user.ID,
			Token:  uuid.New(),
		}
		if err := s.repo.Token.Create(ctx, token); err != nil {
			s.log.Error("Failed to reissue token", zap.Error(err), zap.String("user_id", user.ID.String()))
			return nil, fmt.Errorf("reissue token: %w", err)
		}
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.LoginResponse{Token: token.Token.String()}, nil
}
