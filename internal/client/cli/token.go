package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/formsync/internal/client/auth"
)

func (c *Cli) runTokenSet(ctx context.Context, token, endpoint string) error {
	if token == "" {
		var err error
		token, err = c.io.ReadPassword("Token: ")
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
	}

	data, err := c.auth.SetToken(ctx, token, endpoint)
	if err != nil {
		return err
	}

	if c.json {
		return c.printJSON(data)
	}
	c.io.Printf("✓ Token saved for %s\n", data.Subject)
	if data.ExpiresAt != 0 {
		c.io.Printf("Expires: %s\n", time.Unix(data.ExpiresAt, 0).Local().Format(time.RFC3339))
	}
	return nil
}

func (c *Cli) runTokenStatus(ctx context.Context) error {
	data, err := c.auth.Status(ctx)
	if errors.Is(err, auth.ErrNotLoggedIn) {
		if c.json {
			return c.printJSON(map[string]bool{"authenticated": false})
		}
		c.io.Println("Not authenticated")
		return nil
	}
	if err != nil {
		return err
	}

	if c.json {
		return c.printJSON(data)
	}
	c.io.Println("=== Token ===")
	c.io.Printf("Subject:  %s\n", data.Subject)
	if data.Endpoint != "" {
		c.io.Printf("Endpoint: %s\n", data.Endpoint)
	}
	switch {
	case data.ExpiresAt == 0:
		c.io.Println("Expires:  never")
	case data.Expired(time.Now()):
		c.io.Printf("Expires:  %s (expired)\n", time.Unix(data.ExpiresAt, 0).Local().Format(time.RFC3339))
	default:
		c.io.Printf("Expires:  %s\n", time.Unix(data.ExpiresAt, 0).Local().Format(time.RFC3339))
	}
	return nil
}

func (c *Cli) runTokenClear(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return err
	}
	if !c.json {
		c.io.Println("✓ Token removed")
	}
	return nil
}
