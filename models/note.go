package models

import (
	"time"
)

type Note struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	Title     string    `gorm:"column:title;type:varchar(100);not null" json:"title"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	Images []*Image `gorm:"foreignKey:NoteID" json:"images,omitempty"`
}

func (Note) TableName() string {
	return "notes"
}
