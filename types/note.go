package types

import "time"

// Pagination 分页常量
const (
	DefaultPage     int = 1
	DefaultPageSize int = 20
)

// SaveNoteImage 一张待保存的新图片
type SaveNoteImage struct {
	Data        []byte  // 图片原始字节
	ContentType string  // 为空时按解码出的格式补全
	AltText     *string // 可选的替代文本
}

// SaveNoteRequest 笔记保存载荷。ID 为空表示新建，否则按 (ID, 归属用户) 更新
type SaveNoteRequest struct {
	ID      *int64           `validate:"-"`
	Title   string           `validate:"required,min=1,max=100"`
	Content string           `validate:"required,min=1,max=10000"`
	Images  []*SaveNoteImage `validate:"-"`
}

// SaveNoteResponse 保存结果，用于客户端跳转
type SaveNoteResponse struct {
	NoteID        int64  `json:"note_id"`
	OwnerUsername string `json:"owner_username"`
	Message       string `json:"message"` // "Note created" / "Note updated"
}

// ImageRef 笔记详情内的图片引用
type ImageRef struct {
	ImageID int64   `json:"image_id"`
	FileID  int64   `json:"file_id"`
	AltText *string `json:"alt_text,omitempty"`
}

// NoteDetail 笔记详情
type NoteDetail struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Images    []*ImageRef `json:"images"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NoteSummary 列表项，不带正文图片
type NoteSummary struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListNotesRequest 查询自己笔记的请求
type ListNotesRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pagesize" binding:"omitempty,min=1,max=100"`
}

// ListNotesResponse 笔记列表响应
type ListNotesResponse struct {
	Notes []*NoteSummary `json:"notes"`
	Total int64          `json:"total"`
}
