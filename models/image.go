package models

import "time"

// Image 笔记图片，独占一个 File；笔记删除后 note_id 置 NULL
type Image struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	FileID      int64     `gorm:"column:file_id;not null;uniqueIndex:idx_file_id" json:"file_id"`
	ContentType string    `gorm:"column:content_type;type:varchar(100);not null" json:"content_type"`
	AltText     *string   `gorm:"column:alt_text;type:varchar(255)" json:"alt_text,omitempty"`
	NoteID      *int64    `gorm:"column:note_id;index:idx_note_id" json:"note_id,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`

	File *File `gorm:"foreignKey:FileID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
	Note *Note `gorm:"foreignKey:NoteID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Image) TableName() string {
	return "images"
}
