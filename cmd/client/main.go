package main

import (
	"context"

	"github.com/mpetrov/dashauth/internal/client/cli"
	"github.com/mpetrov/dashauth/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app := cli.NewApp(cfg)
	app.Run(ctx)
}
