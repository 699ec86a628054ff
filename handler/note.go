package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"Notely/config"
	"Notely/middleware"
	"Notely/pkg/context"
	"Notely/pkg/response"
	"Notely/service"
	"Notely/types"

	"github.com/gin-gonic/gin"
)

type Note struct {
	NoteService service.INoteService
	Config      *config.Config
}

func (n *Note) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(n.Config.Jwt.Secret))

	g := r.Group("/v1/notes", authorize)
	g.GET("", context.Wrap(n.ListNotes))
	g.POST("", context.Wrap(n.SaveNote))
	g.GET("/:id", context.Wrap(n.GetNote))
	g.DELETE("/:id", context.Wrap(n.DeleteNote))

	gi := r.Group("/v1/images", authorize)
	gi.DELETE("/:id", context.Wrap(n.DeleteImage))
}

// GetNote 加载笔记详情
func (n *Note) GetNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	noteID, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := n.NoteService.LoadNote(c.Request.Context(), noteID, userID)
	if err != nil {
		return noteError(err)
	}

	response.Success(c, detail)
	return nil
}

// SaveNote 保存笔记。multipart 表单：id(可选)、title、content、
// images(可多个文件)、alt_texts(与 images 按顺序对应，可缺省)
func (n *Note) SaveNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	req := &types.SaveNoteRequest{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
	}
	if idStr := c.PostForm("id"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return response.NewError(http.StatusBadRequest, "id 必须是数字")
		}
		req.ID = &id
	}

	altTexts := form.Value["alt_texts"]
	for i, header := range form.File["images"] {
		file, err := header.Open()
		if err != nil {
			return response.NewError(http.StatusInternalServerError, err.Error())
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return response.NewError(http.StatusInternalServerError, err.Error())
		}

		img := &types.SaveNoteImage{
			Data:        data,
			ContentType: header.Header.Get("Content-Type"),
		}
		if i < len(altTexts) && altTexts[i] != "" {
			alt := altTexts[i]
			img.AltText = &alt
		}
		req.Images = append(req.Images, img)
	}

	resp, err := n.NoteService.SaveNote(c.Request.Context(), userID, req)
	if err != nil {
		return noteError(err)
	}

	response.Success(c, resp)
	return nil
}

// ListNotes 查询自己的笔记列表
func (n *Note) ListNotes(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.ListNotesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := n.NoteService.ListNotes(c.Request.Context(), userID, req.Page, req.PageSize)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

// DeleteNote 删除笔记
func (n *Note) DeleteNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	noteID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := n.NoteService.DeleteNote(c.Request.Context(), userID, noteID); err != nil {
		return noteError(err)
	}

	response.Success(c, gin.H{"message": "Note deleted"})
	return nil
}

// DeleteImage 删除笔记图片
func (n *Note) DeleteImage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	imageID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := n.NoteService.DeleteImage(c.Request.Context(), userID, imageID); err != nil {
		return noteError(err)
	}

	response.Success(c, gin.H{"message": "Image deleted"})
	return nil
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, "id 必须是数字")
	}
	return id, nil
}

// noteError 把服务层错误映射为业务错误，校验错误原样透传
func noteError(err error) error {
	switch {
	case errors.Is(err, service.ErrNoteNotFound),
		errors.Is(err, service.ErrImageNotFound),
		errors.Is(err, service.ErrFileNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	default:
		return err
	}
}
