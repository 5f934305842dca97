package main

import (
	"riminspect/config"
	"riminspect/di"
	"riminspect/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()
	app.Start()
}
