//go:build wireinject
// +build wireinject

package main

import (
	"Notely/config"
	"Notely/dao"
	"Notely/dao/cache"
	"Notely/handler"
	"Notely/pkg/client"
	"Notely/pkg/database"
	"Notely/pkg/server"
	"Notely/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		cache.NewNoteCache,

		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Note), "*"),
		wire.Struct(new(handler.File), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
