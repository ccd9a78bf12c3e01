package storage

import (
	"fmt"

	"github.com/avGenie/go-order-processing/internal/app/config"
	err_storage "github.com/avGenie/go-order-processing/internal/app/storage/api/errors"
	"github.com/avGenie/go-order-processing/internal/app/storage/api/model"
	storage "github.com/avGenie/go-order-processing/internal/app/storage/postgres"
)

func InitStorage(config config.Config) (model.Storage, error) {
	if len(config.DBConnect) == 0 {
		return nil, err_storage.ErrEmptyDatabaseConfig
	}

	postgres, err := storage.NewPostgresStorage(config.DBConnect)
	if err != nil {
		return nil, err
	}

	err = postgres.Migrate()
	if err != nil {
		postgres.Close()
		return nil, fmt.Errorf("error while migrating postgresql storage: %w", err)
	}

	return postgres, nil
}
