package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	NetAddr    string        `env:"RUN_ADDRESS"`
	DBConnect  string        `env:"DATABASE_URI"`
	APIAddr    string        `env:"API_SYSTEM_ADDRESS"`
	APITimeout time.Duration `env:"API_TIMEOUT"`
	ExportDir  string        `env:"EXPORT_DIR"`
	JWTSecret  string        `env:"JWT_SECRET"`
	LogLevel   string        `env:"LOG_LEVEL"`
}

func InitConfig() (config Config) {
	flag.StringVar(&config.NetAddr, "a", "localhost:8080", "net address host:port")
	flag.StringVar(&config.DBConnect, "d", "", "database credentials in format: host=host port=port user=myuser password=xxxx dbname=mydb sslmode=disable")
	flag.StringVar(&config.APIAddr, "r", "", "order classification system address")
	flag.DurationVar(&config.APITimeout, "t", 3*time.Second, "order classification system request timeout")
	flag.StringVar(&config.ExportDir, "e", ".", "directory for exported order files")
	flag.StringVar(&config.JWTSecret, "k", "", "secret key for signing auth tokens")
	flag.StringVar(&config.LogLevel, "l", "info", "log level")
	flag.Parse()

	if err := env.Parse(&config); err != nil {
		panic(fmt.Errorf("error while parsing config: %w", err))
	}

	return
}
