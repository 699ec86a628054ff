package models

import "time"

type Users struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(32);not null;uniqueIndex:idx_username" json:"username"`
	Password  string    `gorm:"column:password;type:varchar(128);not null" json:"-"`
	Nickname  string    `gorm:"column:nickname;type:varchar(32);not null;default:''" json:"nickname"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
