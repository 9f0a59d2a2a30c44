package main

import (
	"context"
	"log"

	"github.com/Theamazinguero/recipeclone2/cmd/config"
	migration "github.com/Theamazinguero/recipeclone2/cmd/database/migrate"
	"github.com/Theamazinguero/recipeclone2/internal/utils"
	"github.com/Theamazinguero/recipeclone2/pkg/jwt"
	"github.com/Theamazinguero/recipeclone2/pkg/user"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// one-time bootstrap: roles + well-known admin account
	userService := user.NewUserService(user.NewUserRepository(db), jwt.NewJWTService())
	if err := userService.SeedRolesAndAdmin(
		context.Background(),
		utils.GetConfig("ADMIN_EMAIL"),
		utils.GetConfig("ADMIN_PASSWORD"),
	); err != nil {
		log.Fatalf("failed to seed roles and admin: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
