package main

import (
	"context"

	"innkeep/config"
	"innkeep/di"
	"innkeep/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	menu := di.InitializeMenu()
	menu.Run(context.Background())
}
