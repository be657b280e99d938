package cli

import (
	"context"
	"fmt"

	"github.com/kunsthaus/canvasbid/internal/client/session"
)

func (c *Cli) runAccount(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: canvasbid account <update|password|artworks>")
	}

	switch args[0] {
	case "update":
		return c.runAccountUpdate(ctx)
	case "password":
		return c.runAccountPassword(ctx)
	case "artworks":
		return c.runAccountArtworks(ctx)
	default:
		return fmt.Errorf("unknown account subcommand %q, want update, password or artworks", args[0])
	}
}

func (c *Cli) runAccountUpdate(ctx context.Context) error {
	fmt.Println("=== Update profile ===")
	fmt.Println("Leave a field blank to keep its current value.")
	fmt.Println()

	update := session.ProfileUpdate{}
	var err error

	if update.Email, err = readInput("New email: "); err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	identity := c.session.CurrentUser()
	if identity != nil && identity.IsArtist {
		if update.ArtistName, err = readInput("Artist name: "); err != nil {
			return fmt.Errorf("failed to read artist name: %w", err)
		}
		if update.Bio, err = readInput("Bio: "); err != nil {
			return fmt.Errorf("failed to read bio: %w", err)
		}
		if update.Specialty, err = readInput("Specialty: "); err != nil {
			return fmt.Errorf("failed to read specialty: %w", err)
		}
	}

	if err := c.session.UpdateProfile(ctx, update); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Profile updated.")

	return nil
}

func (c *Cli) runAccountPassword(ctx context.Context) error {
	fmt.Println("=== Change password ===")
	fmt.Println()

	current, err := readPassword("Current password: ")
	if err != nil {
		return fmt.Errorf("failed to read current password: %w", err)
	}
	next, err := readPassword("New password: ")
	if err != nil {
		return fmt.Errorf("failed to read new password: %w", err)
	}

	if err := c.session.ChangePassword(ctx, current, next); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Password changed.")

	return nil
}

func (c *Cli) runAccountArtworks(ctx context.Context) error {
	artworks, err := c.catalog.MyArtworks(ctx)
	if err != nil {
		return err
	}

	if len(artworks) == 0 {
		fmt.Println("You have not submitted any artworks yet.")
		return nil
	}

	fmt.Printf("%-4s  %-28s  %-14s  %10s\n", "ID", "TITLE", "CATEGORY", "PRICE")
	for _, artwork := range artworks {
		fmt.Printf("%-4d  %-28s  %-14s  %10.2f\n",
			artwork.ID, artwork.Title, artwork.Category, artwork.Price)
	}

	return nil
}
