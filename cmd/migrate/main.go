package main

import (
	"fmt"
	"os"

	"Notely/config"
	"Notely/models"
	"Notely/pkg/database"
	"Notely/pkg/log"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)

	app := &cli.App{
		Name:  "migrate",
		Usage: "apply database schema",
		Action: func(ctx *cli.Context) error {
			db := database.NewDB(cfg)
			// images 外键策略在模型上声明：file_id 级联删除，note_id 置空
			if err := db.AutoMigrate(
				&models.Users{},
				&models.Note{},
				&models.File{},
				&models.Image{},
			); err != nil {
				return err
			}
			log.L.Info("migration complete")
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.L.Fatal("migration failed", zap.Error(err))
	}
}
