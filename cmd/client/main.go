package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/devconnector/internal/client/cli"
	"github.com/dmitrijs2005/devconnector/internal/client/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	if err := cli.NewRootCmd(cfg).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
