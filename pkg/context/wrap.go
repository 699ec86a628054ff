package context

import (
	"errors"
	"net/http"

	"Notely/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}

			// 校验错误，逐字段返回
			var ve *response.ValidationError
			if errors.As(err, &ve) {
				c.JSON(http.StatusBadRequest, response.Response{
					Code: http.StatusBadRequest,
					Msg:  ve.Error(),
					Data: gin.H{"fields": ve.Fields},
				})
				return
			}

			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				status := http.StatusOK
				if be.Code >= http.StatusBadRequest && be.Code < http.StatusInternalServerError {
					status = be.Code
				}
				c.JSON(status, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}
