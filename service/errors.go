package service

import "errors"

// 未知ID和归属他人统一折叠为 not found，避免泄露资源存在性
var (
	ErrNoteNotFound       = errors.New("note not found")
	ErrImageNotFound      = errors.New("image not found")
	ErrFileNotFound       = errors.New("file not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
