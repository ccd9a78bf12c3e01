package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/avGenie/go-order-processing/internal/app/config"
	"github.com/avGenie/go-order-processing/internal/app/controller/http/middleware/logger"
	"github.com/avGenie/go-order-processing/internal/app/controller/http/middleware/token"
	"github.com/avGenie/go-order-processing/internal/app/controller/http/orders"
	"github.com/avGenie/go-order-processing/internal/app/controller/http/ping"
	storage "github.com/avGenie/go-order-processing/internal/app/storage/api/model"
	"github.com/avGenie/go-order-processing/internal/app/storage/export"
	"github.com/avGenie/go-order-processing/internal/app/usecase/processor"
	"github.com/avGenie/go-order-processing/internal/app/usecase/remote"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HTTPServer struct {
	server *http.Server

	config  config.Config
	storage storage.Storage

	orders orders.Order
}

func New(config config.Config, storage storage.Storage) *HTTPServer {
	remoteClient, err := remote.New(config)
	if err != nil {
		zap.L().Fatal("error while creating order classification api client", zap.Error(err))
	}

	orderProcessor := processor.New(storage, remoteClient, export.NewFileSink(config.ExportDir))
	order := orders.New(orderProcessor, storage)

	mux := createMux(config, storage, order)

	server := &http.Server{
		Addr:    config.NetAddr,
		Handler: mux,
	}

	instance := &HTTPServer{
		server:  server,
		config:  config,
		storage: storage,
		orders:  order,
	}

	return instance
}

func (s *HTTPServer) StartHTTPServer() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("fatal error while starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zap.L().Info("Got interruption signal. Shutting down HTTP server gracefully...")
	err := s.server.Shutdown(context.Background())
	if err != nil {
		zap.L().Error("error while shutting down server", zap.Error(err))
	}
}

func createMux(config config.Config, storage storage.Storage, orders orders.Order) *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.LoggerMiddleware)

	r.Get("/ping", ping.Ping(storage))

	r.Group(func(r chi.Router) {
		r.Use(token.TokenParserMiddleware(config.JWTSecret))

		r.Post("/api/user/orders", orders.UploadOrder())
		r.Get("/api/user/orders", orders.GetUserOrders())
		r.Post("/api/user/orders/process", orders.ProcessUserOrders())
	})

	return r
}
