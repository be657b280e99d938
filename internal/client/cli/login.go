package cli

import (
	"context"
	"fmt"

	"github.com/kunsthaus/canvasbid/internal/client/session"
)

func (c *Cli) runLogin(ctx context.Context) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	username, err := readInput("Username or email: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()
	fmt.Println("Signing in...")

	identity, err := c.session.Login(ctx, session.Credentials{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("✓ Welcome back, %s!\n", identity.Username)
	if identity.IsArtist {
		fmt.Println("Artist account: you can list artworks for auction.")
	}
	if expiry, ok := c.session.TokenExpiry(); ok {
		fmt.Printf("Session valid until %s\n", expiry.Local().Format("2006-01-02 15:04"))
	}

	return nil
}
