package main

import (
	"context"
	"log"

	"github.com/mpetrov/dashauth/internal/server"
	"github.com/mpetrov/dashauth/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg, server.RoleUser)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
