package storage

import "errors"

var (
	ErrDatabase = errors.New("database failure")

	ErrEmptyDatabaseConfig = errors.New("empty database config")
	ErrOrderExists         = errors.New("order with given id already exists in storage")
)
