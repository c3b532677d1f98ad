package command

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/formsync/internal/server/jwt"
)

func newTokenCommand(a *app) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for formsync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.server()
			if err != nil {
				return err
			}

			token, expiresAt, err := jwt.NewService(cfg.JWTSecret, cfg.TokenTTL).Mint(subject)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, token)
			if expiresAt.IsZero() {
				fmt.Fprintln(cmd.ErrOrStderr(), "Expires: never")
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "Expires: %s\n", expiresAt.Format(time.RFC3339))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "who the token is issued to")
	_ = cmd.MarkFlagRequired("subject")
	cmd.Flags().Duration("token-ttl", 0, "token lifetime, 0 for no expiry")

	return cmd
}
