// Package config handles configuration for the devconnector server:
// defaults, an optional JSON file, environment variables and command-line
// flags, applied in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"

	HashBcrypt   = "bcrypt"
	HashArgon2id = "argon2id"
)

// Config holds runtime settings for the server.
//
// SecretKey signs access tokens (HS256). It is read once at startup and never
// changed afterwards; the server refuses to start without it.
type Config struct {
	HTTPAddr      string        `env:"DEVCONNECTOR_HTTP_ADDR"`
	GRPCAddr      string        `env:"DEVCONNECTOR_GRPC_ADDR"`
	StorageType   string        `env:"DEVCONNECTOR_STORAGE"`
	DatabaseDSN   string        `env:"DEVCONNECTOR_DATABASE_DSN"`
	SecretKey     string        `env:"DEVCONNECTOR_SECRET_KEY"`
	TokenValidity time.Duration `env:"DEVCONNECTOR_TOKEN_VALIDITY"`
	HashAlgorithm string        `env:"DEVCONNECTOR_HASH_ALGORITHM"`
	BcryptCost    int           `env:"DEVCONNECTOR_BCRYPT_COST"`
	LogLevel      string        `env:"DEVCONNECTOR_LOG_LEVEL"`
	LogFormat     string        `env:"DEVCONNECTOR_LOG_FORMAT"`
}

// LoadDefaults populates Config with development defaults.
// SecretKey is intentionally left empty.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":5000"
	c.GRPCAddr = ":50051"
	c.StorageType = StorageMemory
	c.DatabaseDSN = ""
	c.TokenValidity = 100 * time.Hour
	c.HashAlgorithm = HashBcrypt
	c.BcryptCost = 10
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// Validate reports the first setting that would make the server unusable.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("secret key is not configured")
	}

	switch c.StorageType {
	case StorageMemory:
	case StorageSQLite, StoragePostgres:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("database dsn is required for %s storage", c.StorageType)
		}
	default:
		return fmt.Errorf("unknown storage type %q", c.StorageType)
	}

	switch c.HashAlgorithm {
	case HashBcrypt:
		if c.BcryptCost < 4 || c.BcryptCost > 31 {
			return fmt.Errorf("bcrypt cost %d out of range 4..31", c.BcryptCost)
		}
	case HashArgon2id:
	default:
		return fmt.Errorf("unknown hash algorithm %q", c.HashAlgorithm)
	}

	if c.TokenValidity <= 0 {
		return errors.New("token validity must be positive")
	}

	return nil
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config, then DEVCONNECTOR_* environment variables, then flags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoad is LoadConfig over os.Args that exits the process on failure.
func MustLoad() *Config {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
