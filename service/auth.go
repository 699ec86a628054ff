package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Notely/config"
	"Notely/dao"
	"Notely/models"
	"Notely/pkg/encrypt"
	"Notely/pkg/jwt"
	"Notely/pkg/snowflake"
	"Notely/types"

	"gorm.io/gorm"
)

const defaultTokenExpire = 7200

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
}

type AuthService struct {
	UsersRepo *dao.Users
	Config    *config.Config
}

// Register 注册新用户
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error) {
	if s.UsersRepo.IsUsernameExist(ctx, req.Username) {
		return nil, ErrUsernameTaken
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &models.Users{
		ID:        snowflake.GenID(),
		Username:  req.Username,
		Password:  hash,
		Nickname:  req.Nickname,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.UsersRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login 登录换取访问令牌。用户不存在和密码错误返回同一个错误
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	user, err := s.UsersRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !encrypt.VerifyPassword(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	expire := s.Config.Jwt.ExpiresTime
	if expire <= 0 {
		expire = defaultTokenExpire
	}
	token, err := jwt.GenerateToken(
		[]byte(s.Config.Jwt.Secret),
		user.ID,
		user.Username,
		"access",
		time.Duration(expire)*time.Second,
	)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &types.LoginResponse{
		UserID:      user.ID,
		Username:    user.Username,
		AccessToken: token,
		ExpiresIn:   expire,
	}, nil
}
