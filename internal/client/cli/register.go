package cli

import (
	"context"
	"fmt"

	"github.com/kunsthaus/canvasbid/internal/client/session"
)

func (c *Cli) runRegister(ctx context.Context) error {
	fmt.Println("=== Register ===")
	fmt.Println()

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	reg := session.Registration{
		Username: username,
		Email:    email,
		Password: password,
	}

	isArtist, err := readYesNo("Register as an artist?")
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	if isArtist {
		reg.IsArtist = true
		if reg.ArtistName, err = readInput("Artist name (blank for username): "); err != nil {
			return fmt.Errorf("failed to read artist name: %w", err)
		}
		if reg.Bio, err = readInput("Short bio: "); err != nil {
			return fmt.Errorf("failed to read bio: %w", err)
		}
		if reg.Specialty, err = readInput("Specialty: "); err != nil {
			return fmt.Errorf("failed to read specialty: %w", err)
		}
	}

	fmt.Println()
	fmt.Println("Creating account...")

	identity, err := c.session.Register(ctx, reg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("✓ Account created. You are signed in as %s.\n", identity.Username)

	return nil
}
