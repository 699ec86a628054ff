package dao

import (
	"Notely/models"

	"gorm.io/gorm"
)

type FileDAO struct {
	Repo[models.File]
}

func NewFileDAO(db *gorm.DB) *FileDAO {
	return &FileDAO{Repo: NewRepo[models.File](db)}
}
