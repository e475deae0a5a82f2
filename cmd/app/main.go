package main

import (
	"lodge/config"
	"lodge/di"
	"lodge/shared/logger"
)

// @title Lodge API
// @version 1.0
// @description Guest-facing hotel booking service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
