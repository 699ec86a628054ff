package models

import "time"

// File 图片二进制内容，创建后不再更新
type File struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Blob      []byte    `gorm:"column:blob;type:mediumblob;not null" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (File) TableName() string {
	return "files"
}
