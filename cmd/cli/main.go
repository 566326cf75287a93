package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/novakart/storefront/internal/buildinfo"
	"github.com/novakart/storefront/internal/client/cli"
	"github.com/novakart/storefront/internal/client/config"
	"github.com/novakart/storefront/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg, logging.NewDefault(slog.LevelInfo))

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
