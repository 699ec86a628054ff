package dao

import (
	"context"

	"Notely/models"

	"gorm.io/gorm"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

// FindByIDAndUser 按 (id, 归属用户) 查询笔记，带图片。
// 笔记不存在和归属他人同样返回 gorm.ErrRecordNotFound，不泄露存在性。
func (d *NoteDAO) FindByIDAndUser(ctx context.Context, noteID, userID int64) (*models.Note, error) {
	var note models.Note
	err := d.Db.WithContext(ctx).
		Preload("Images").
		Where("id = ? AND user_id = ?", noteID, userID).
		First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// FindByUserID 查询用户的笔记列表
func (d *NoteDAO) FindByUserID(ctx context.Context, userID int64, limit, offset int) ([]*models.Note, int64, error) {
	var total int64
	if err := d.Db.WithContext(ctx).
		Model(&models.Note{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notes).Error
	return notes, total, err
}

// SaveWithImages 在一个事务内完成笔记 upsert 和新图片的 File/Image 写入。
// update 为 true 时先在事务内做归属校验，校验失败整个事务回滚，不产生任何写入。
func (d *NoteDAO) SaveWithImages(ctx context.Context, note *models.Note, update bool, files []*models.File, images []*models.Image) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if update {
			var count int64
			if err := tx.Model(&models.Note{}).
				Where("id = ? AND user_id = ?", note.ID, note.UserID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
			if err := tx.Model(&models.Note{}).
				Where("id = ?", note.ID).
				Updates(map[string]any{
					"title":   note.Title,
					"content": note.Content,
				}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Create(note).Error; err != nil {
				return err
			}
		}

		for i := range files {
			if err := tx.Create(files[i]).Error; err != nil {
				return err
			}
			if err := tx.Create(images[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteWithImages 删除笔记及其图片和图片文件，归属校验失败返回 gorm.ErrRecordNotFound
func (d *NoteDAO) DeleteWithImages(ctx context.Context, noteID, userID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Note{}).
			Where("id = ? AND user_id = ?", noteID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		var images []*models.Image
		if err := tx.Where("note_id = ?", noteID).Find(&images).Error; err != nil {
			return err
		}

		if len(images) > 0 {
			fileIDs := make([]int64, 0, len(images))
			for _, img := range images {
				fileIDs = append(fileIDs, img.FileID)
			}
			if err := tx.Where("note_id = ?", noteID).Delete(&models.Image{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", fileIDs).Delete(&models.File{}).Error; err != nil {
				return err
			}
		}

		return tx.Where("id = ?", noteID).Delete(&models.Note{}).Error
	})
}
