package service

import (
	"context"
	"testing"

	"Notely/dao"
	"Notely/types"

	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return &AuthService{
		UsersRepo: dao.NewUsers(db),
		Config:    testConfig(),
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.RegisterRequest{
		Username: "alice",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotEqual(t, "s3cret-pass", user.Password, "password must be stored hashed")

	resp, err := svc.Login(ctx, &types.LoginRequest{
		Username: "alice",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.Equal(t, user.ID, resp.UserID)
	require.NotEmpty(t, resp.AccessToken)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.RegisterRequest{Username: "alice", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &types.RegisterRequest{Username: "alice", Password: "another-pass"})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.RegisterRequest{Username: "alice", Password: "s3cret-pass"})
	require.NoError(t, err)

	// 密码错误和用户不存在返回同一个错误
	_, err = svc.Login(ctx, &types.LoginRequest{Username: "alice", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &types.LoginRequest{Username: "nobody", Password: "whatever"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
