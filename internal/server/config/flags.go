package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/devconnector/internal/flagx"
)

// parseFlags applies command-line flags (short forms):
//
//	-a string     HTTP listen address (":5000")
//	-g string     gRPC listen address (":50051")
//	-m string     storage backend: memory, sqlite, postgres
//	-d string     database DSN
//	-s string     token signing secret
//	-t duration   token validity ("100h")
//	-x string     password hash algorithm: bcrypt, argon2id
//	-b int        bcrypt cost
//	-l string     log level
//	-f string     log format: json, text
//
// Only these flags are looked at; -c/-config is handled by parseJson.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-m", "-d", "-s", "-t", "-x", "-b", "-l", "-f"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "HTTP listen address")
	fs.StringVar(&config.GRPCAddr, "g", config.GRPCAddr, "gRPC listen address")
	fs.StringVar(&config.StorageType, "m", config.StorageType, "storage backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "token signing secret")
	fs.DurationVar(&config.TokenValidity, "t", config.TokenValidity, "token validity")
	fs.StringVar(&config.HashAlgorithm, "x", config.HashAlgorithm, "password hash algorithm")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format")

	return fs.Parse(args)
}
