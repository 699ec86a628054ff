package handler

import (
	"errors"
	"net/http"

	"Notely/pkg/context"
	"Notely/pkg/response"
	"Notely/service"
	"Notely/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/register", context.Wrap(a.Register))
	g.POST("/login", context.Wrap(a.Login))
}

// Register 用户注册
func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	user, err := a.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			return response.NewError(http.StatusConflict, err.Error())
		}
		return err
	}

	response.Success(c, gin.H{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return nil
}

// Login 用户登录
func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := a.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return response.NewError(http.StatusUnauthorized, err.Error())
		}
		return err
	}

	response.Success(c, resp)
	return nil
}
