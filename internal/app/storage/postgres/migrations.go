package storage

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var migrations embed.FS

func (s *Postgres) Migrate() error {
	goose.SetBaseFS(migrations)

	err := goose.SetDialect("postgres")
	if err != nil {
		return fmt.Errorf("error while setting goose dialect: %w", err)
	}

	err = goose.Up(s.db, migrationsDir)
	if err != nil {
		return fmt.Errorf("error while applying migrations: %w", err)
	}

	return nil
}
