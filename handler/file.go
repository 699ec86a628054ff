package handler

import (
	"net/http"

	"Notely/pkg/context"
	"Notely/service"

	"github.com/gin-gonic/gin"
)

type File struct {
	NoteService service.INoteService
}

// RegisterRouter 文件按ID直链访问，不走鉴权
func (f *File) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/files")
	g.GET("/:id", context.Wrap(f.GetFile))
}

func (f *File) GetFile(c *gin.Context) error {
	fileID, err := pathID(c)
	if err != nil {
		return err
	}

	blob, contentType, err := f.NoteService.GetFile(c.Request.Context(), fileID)
	if err != nil {
		return noteError(err)
	}

	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, contentType, blob)
	return nil
}
