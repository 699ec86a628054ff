package server

import (
	"Notely/handler"
)

type Handlers struct {
	Auth *handler.Auth
	Note *handler.Note
	File *handler.File
}
