package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"soundwave/internal/models/db_models"
	"soundwave/internal/models/request_models"
	"soundwave/internal/models/response_models"
	"soundwave/internal/repositories"
	"soundwave/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.UserResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
	subRepo  repositories.SubscriptionRepository
	tokens   *utils.TokenManager
	log      *zap.Logger
}

func NewAccountService(userRepo repositories.UserRepository, subRepo repositories.SubscriptionRepository, tokens *utils.TokenManager, log *zap.Logger) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		subRepo:  subRepo,
		tokens:   tokens,
		log:      log.Named("accounts"),
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         utils.RoleUser,
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		a.log.Error("insert user", zap.String("email", email), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	res := toUserResponse(user)
	return &res, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	startTime := time.Now()

	user, err := a.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(request.Email)))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	// Unknown email and wrong password are indistinguishable to the caller.
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(user.ID, user.Role)
	if err != nil {
		a.log.Error("create token", zap.String("user_id", user.ID.String()), zap.Error(err))
		return nil, utils.ErrInvalidCredentials
	}

	sub, err := a.subRepo.FindCurrent(ctx, user.ID, time.Now())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	a.log.Debug("login", zap.String("user_id", user.ID.String()), zap.Duration("took", time.Since(startTime)))

	return &response_models.AuthResponse{
		Token:      token,
		HasPremium: sub != nil,
		User:       toUserResponse(user),
	}, nil
}

func (a *AccountService) Me(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	res := toUserResponse(user)
	return &res, nil
}
