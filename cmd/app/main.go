package main

import (
	"inn/config"
	"inn/di"
	"inn/shared/logger"
	"inn/shared/metrics"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	metrics.Register()

	worker := di.InitializeWorker()
	worker.Serve()
}
