package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/devconnector/internal/flagx"
	"github.com/dmitrijs2005/devconnector/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Absent keys keep the
// value already present in Config.
type JsonConfig struct {
	HTTPAddr      *string         `json:"http_addr"`
	GRPCAddr      *string         `json:"grpc_addr"`
	StorageType   *string         `json:"storage"`
	DatabaseDSN   *string         `json:"database_dsn"`
	SecretKey     *string         `json:"secret_key"`
	TokenValidity *timex.Duration `json:"token_validity"`
	HashAlgorithm *string         `json:"hash_algorithm"`
	BcryptCost    *int            `json:"bcrypt_cost"`
	LogLevel      *string         `json:"log_level"`
	LogFormat     *string         `json:"log_format"`
}

// parseJson loads the file named by -c/-config in args, if any.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.GRPCAddr, c.GRPCAddr)
	setString(&config.StorageType, c.StorageType)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.HashAlgorithm, c.HashAlgorithm)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	if c.TokenValidity != nil {
		config.TokenValidity = c.TokenValidity.Duration
	}
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}

	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
