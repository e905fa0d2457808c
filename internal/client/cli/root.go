// Package cli implements the devconnector command-line client.
package cli

import (
	"time"

	"github.com/dmitrijs2005/devconnector/internal/client/config"
	"github.com/spf13/cobra"
)

// version is set via ldflags at build time.
var version = "dev"

type options struct {
	server  string
	timeout time.Duration
}

func NewRootCmd(cfg *config.Config) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "devconnector",
		Short:         "devconnector account client",
		Version:       version,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVarP(&opts.server, "server", "a", cfg.ServerEndpointAddr, "gRPC address of the devconnector server")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", cfg.RequestTimeout, "request timeout")

	root.AddCommand(newRegisterCmd(opts))
	return root
}
