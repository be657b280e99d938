package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runArtists(ctx context.Context) error {
	artists, err := c.catalog.Artists(ctx)
	if err != nil {
		return err
	}

	if len(artists) == 0 {
		fmt.Println("No artists in the gallery yet.")
		return nil
	}

	fmt.Printf("%-4s  %-24s  %-24s  %5s\n", "ID", "NAME", "SPECIALTY", "WORKS")
	for _, artist := range artists {
		name := artist.Name
		if artist.Featured {
			name += " ★"
		}
		fmt.Printf("%-4d  %-24s  %-24s  %5d\n", artist.ID, name, artist.Specialty, artist.Works)
	}

	return nil
}

func (c *Cli) runArtworks(ctx context.Context) error {
	artworks, err := c.catalog.Artworks(ctx)
	if err != nil {
		return err
	}

	if len(artworks) == 0 {
		fmt.Println("No artworks in the catalog yet.")
		return nil
	}

	fmt.Printf("%-4s  %-28s  %-20s  %-14s  %10s\n", "ID", "TITLE", "ARTIST", "CATEGORY", "PRICE")
	for _, artwork := range artworks {
		fmt.Printf("%-4d  %-28s  %-20s  %-14s  %10.2f\n",
			artwork.ID, artwork.Title, artwork.ArtistName, artwork.Category, artwork.Price)
	}

	return nil
}

func (c *Cli) runSearch(ctx context.Context, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("usage: canvasbid search <query>")
	}

	result, err := c.catalog.Search(ctx, query)
	if err != nil {
		return err
	}

	if result.Total == 0 {
		fmt.Printf("Nothing found for %q.\n", query)
		return nil
	}

	if len(result.Artworks) > 0 {
		fmt.Printf("Artworks matching %q:\n", query)
		for _, artwork := range result.Artworks {
			fmt.Printf("  [%d] %s by %s (%.2f)\n", artwork.ID, artwork.Title, artwork.ArtistName, artwork.Price)
		}
	}
	if len(result.Artists) > 0 {
		fmt.Printf("Artists matching %q:\n", query)
		for _, artist := range result.Artists {
			fmt.Printf("  [%d] %s (%s)\n", artist.ID, artist.Name, artist.Specialty)
		}
	}

	return nil
}
