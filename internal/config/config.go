package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"sqlite"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"voltcheck.db"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address         string   `envconfig:"VOLTCHECK_ADDRESS" default:":3443"`
	MetricsAddress  string   `envconfig:"VOLTCHECK_METRICS_ADDRESS" default:":8080"`
	LogLevel        string   `envconfig:"VOLTCHECK_LOG_LEVEL" default:"info"`
	MigrationFolder string   `envconfig:"VOLTCHECK_MIGRATIONS_FOLDER" default:""`
	TCFPolicy       string   `envconfig:"VOLTCHECK_TCF_POLICY" default:"rounded"`
	AllowedOrigins  []string `envconfig:"VOLTCHECK_ALLOWED_ORIGINS" default:"*"`
}

// New reads the configuration from the environment once. Variables found in a
// .env file of the working directory are loaded first and never override the environment.
func New() (*Config, error) {
	if singleConfig == nil {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg := new(Config)
		if err := envconfig.Process("", cfg); err != nil {
			return nil, err
		}
		singleConfig = cfg
	}
	return singleConfig, nil
}

// NewDefault returns the default configuration backed by an in-memory SQLite database.
// The environment is not read.
func NewDefault() *Config {
	return &Config{
		Database: &dbConfig{
			Type:     "sqlite",
			Hostname: "localhost",
			Port:     "5432",
			Name:     "file::memory:?cache=shared",
			User:     "admin",
			Password: "adminpass",
		},
		Service: &svcConfig{
			Address:        ":3443",
			MetricsAddress: ":8080",
			LogLevel:       "info",
			TCFPolicy:      "rounded",
			AllowedOrigins: []string{"*"},
		},
	}
}
