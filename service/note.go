package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Notely/config"
	"Notely/dao"
	"Notely/dao/cache"
	"Notely/models"
	"Notely/pkg/snowflake"
	"Notely/types"

	"gorm.io/gorm"
)

const noteCacheTTL = 10 * time.Minute

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	LoadNote(ctx context.Context, noteID, userID int64) (*types.NoteDetail, error)
	SaveNote(ctx context.Context, userID int64, req *types.SaveNoteRequest) (*types.SaveNoteResponse, error)
	ListNotes(ctx context.Context, userID int64, page, pageSize int) (*types.ListNotesResponse, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
	DeleteImage(ctx context.Context, userID, imageID int64) error
	GetFile(ctx context.Context, fileID int64) ([]byte, string, error)
}

type NoteService struct {
	NoteDAO   *dao.NoteDAO
	ImageDAO  *dao.ImageDAO
	FileDAO   *dao.FileDAO
	UsersRepo *dao.Users
	NoteCache *cache.NoteCache
	Config    *config.Config
}

// LoadNote 加载笔记详情，只有归属用户可见。
// 缓存按笔记ID命中后仍做归属校验，他人请求一律返回 ErrNoteNotFound。
func (s *NoteService) LoadNote(ctx context.Context, noteID, userID int64) (*types.NoteDetail, error) {
	if detail, ok := s.NoteCache.Get(ctx, noteID); ok {
		if detail.UserID != userID {
			return nil, ErrNoteNotFound
		}
		return detail, nil
	}

	note, err := s.NoteDAO.FindByIDAndUser(ctx, noteID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("load note: %w", err)
	}

	detail := noteDetail(note)
	s.NoteCache.Set(ctx, noteID, detail, noteCacheTTL)
	return detail, nil
}

// SaveNote 保存笔记。ID 为空新建，否则按 (ID, 归属用户) 更新；
// 笔记 upsert 和新图片写入在同一个事务内完成，失败不留下部分写入。
func (s *NoteService) SaveNote(ctx context.Context, userID int64, req *types.SaveNoteRequest) (*types.SaveNoteResponse, error) {
	if err := validateSaveNote(req, s.Config.Upload.ImageSizeLimit()); err != nil {
		return nil, err
	}

	now := time.Now()
	note := &models.Note{
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		UpdatedAt: now,
	}
	update := req.ID != nil
	if update {
		note.ID = *req.ID
	} else {
		note.ID = snowflake.GenID()
		note.CreatedAt = now
	}

	files := make([]*models.File, 0, len(req.Images))
	images := make([]*models.Image, 0, len(req.Images))
	for _, img := range req.Images {
		fileID := snowflake.GenID()
		files = append(files, &models.File{
			ID:        fileID,
			Blob:      img.Data,
			CreatedAt: now,
		})
		images = append(images, &models.Image{
			ID:          snowflake.GenID(),
			FileID:      fileID,
			ContentType: img.ContentType,
			AltText:     img.AltText,
			NoteID:      &note.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := s.NoteDAO.SaveWithImages(ctx, note, update, files, images); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("save note: %w", err)
	}

	s.NoteCache.Del(ctx, note.ID)

	owner, err := s.UsersRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load note owner: %w", err)
	}

	msg := "Note created"
	if update {
		msg = "Note updated"
	}
	return &types.SaveNoteResponse{
		NoteID:        note.ID,
		OwnerUsername: owner.Username,
		Message:       msg,
	}, nil
}

// ListNotes 获取用户自己的笔记列表，按创建时间倒序
func (s *NoteService) ListNotes(ctx context.Context, userID int64, page, pageSize int) (*types.ListNotesResponse, error) {
	if page < 1 {
		page = types.DefaultPage
	}
	if pageSize < 1 {
		pageSize = types.DefaultPageSize
	}

	notes, total, err := s.NoteDAO.FindByUserID(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	resp := &types.ListNotesResponse{
		Notes: make([]*types.NoteSummary, 0, len(notes)),
		Total: total,
	}
	for _, note := range notes {
		resp.Notes = append(resp.Notes, &types.NoteSummary{
			ID:        note.ID,
			Title:     note.Title,
			Content:   note.Content,
			CreatedAt: note.CreatedAt,
			UpdatedAt: note.UpdatedAt,
		})
	}
	return resp, nil
}

// DeleteNote 删除笔记，连带删除其图片和图片文件
func (s *NoteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	if err := s.NoteDAO.DeleteWithImages(ctx, noteID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("delete note: %w", err)
	}
	s.NoteCache.Del(ctx, noteID)
	return nil
}

// DeleteImage 删除一张图片及其独占的文件，只有所属笔记的归属用户可操作
func (s *NoteService) DeleteImage(ctx context.Context, userID, imageID int64) error {
	img, err := s.ImageDAO.FindByIDWithNote(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return fmt.Errorf("load image: %w", err)
	}
	if img.NoteID == nil || img.Note == nil || img.Note.UserID != userID {
		return ErrImageNotFound
	}

	if err := s.ImageDAO.DeleteWithFile(ctx, img.ID, img.FileID); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	s.NoteCache.Del(ctx, *img.NoteID)
	return nil
}

// GetFile 读取图片文件内容和 Content-Type
func (s *NoteService) GetFile(ctx context.Context, fileID int64) ([]byte, string, error) {
	file, err := s.FileDAO.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrFileNotFound
		}
		return nil, "", fmt.Errorf("load file: %w", err)
	}

	contentType := "application/octet-stream"
	if img, err := s.ImageDAO.FindByFileID(ctx, fileID); err == nil && img.ContentType != "" {
		contentType = img.ContentType
	}
	return file.Blob, contentType, nil
}

func noteDetail(note *models.Note) *types.NoteDetail {
	detail := &types.NoteDetail{
		ID:        note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		Images:    make([]*types.ImageRef, 0, len(note.Images)),
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
	for _, img := range note.Images {
		detail.Images = append(detail.Images, &types.ImageRef{
			ImageID: img.ID,
			FileID:  img.FileID,
			AltText: img.AltText,
		})
	}
	return detail
}
