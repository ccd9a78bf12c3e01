package main

import (
	"github.com/avGenie/go-order-processing/internal/app/config"
	server "github.com/avGenie/go-order-processing/internal/app/controller/http/server"
	"github.com/avGenie/go-order-processing/internal/app/logger"
	storage "github.com/avGenie/go-order-processing/internal/app/storage/api"
	"go.uber.org/zap"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	orderStorage, err := storage.InitStorage(config)
	if err != nil {
		zap.L().Fatal("error while initializing storage", zap.Error(err))
	}
	defer orderStorage.Close()

	httpServer := server.New(config, orderStorage)
	httpServer.StartHTTPServer()
}
