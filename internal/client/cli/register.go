package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/devconnector/internal/client/client"
	"github.com/spf13/cobra"
)

type registerClient interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Close() error
}

// dialClient is a test seam for client.NewGRPCClient.
var dialClient = func(addr string) (registerClient, error) {
	return client.NewGRPCClient(addr)
}

func newRegisterCmd(opts *options) *cobra.Command {
	var (
		name          string
		email         string
		passwordStdin bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and print its access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				password string
				err      error
			)
			if passwordStdin {
				password, err = ReadLine(cmd.InOrStdin())
			} else {
				password, err = GetPassword(cmd.ErrOrStderr())
			}
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}

			c, err := dialClient(opts.server)
			if err != nil {
				return err
			}
			defer c.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			token, err := c.Register(ctx, name, email, password)
			if err != nil {
				var rej *client.RejectedError
				if errors.As(err, &rej) {
					for _, m := range rej.Messages {
						fmt.Fprintln(cmd.ErrOrStderr(), m)
					}
					return errors.New("registration rejected")
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin instead of the terminal")

	return cmd
}
