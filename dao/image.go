package dao

import (
	"context"

	"Notely/models"

	"gorm.io/gorm"
)

type ImageDAO struct {
	Repo[models.Image]
}

func NewImageDAO(db *gorm.DB) *ImageDAO {
	return &ImageDAO{Repo: NewRepo[models.Image](db)}
}

// FindByIDWithNote 查询图片并带出所属笔记，用于归属校验
func (d *ImageDAO) FindByIDWithNote(ctx context.Context, imageID int64) (*models.Image, error) {
	var image models.Image
	err := d.Db.WithContext(ctx).
		Preload("Note").
		Where("id = ?", imageID).
		First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// FindByFileID 按文件ID查询图片
func (d *ImageDAO) FindByFileID(ctx context.Context, fileID int64) (*models.Image, error) {
	return d.FindByWhere(ctx, "file_id = ?", fileID)
}

// DeleteWithFile 在一个事务内删除图片及其独占的文件
func (d *ImageDAO) DeleteWithFile(ctx context.Context, imageID, fileID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", imageID).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", fileID).Delete(&models.File{}).Error
	})
}
