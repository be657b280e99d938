package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kunsthaus/canvasbid/internal/client/catalog"
)

func (c *Cli) runAddArtwork(ctx context.Context) error {
	fmt.Println("=== Add artwork ===")
	fmt.Println()

	title, err := readInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}

	description, err := readInput("Description: ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	category, err := readInput("Category (blank for contemporary): ")
	if err != nil {
		return fmt.Errorf("failed to read category: %w", err)
	}

	priceInput, err := readInput("Starting price: ")
	if err != nil {
		return fmt.Errorf("failed to read starting price: %w", err)
	}
	price, err := strconv.ParseFloat(priceInput, 64)
	if err != nil {
		return fmt.Errorf("invalid starting price %q", priceInput)
	}

	imageURL, err := readInput("Image URL (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read image url: %w", err)
	}

	fmt.Println()
	fmt.Println("Submitting artwork...")

	artwork, err := c.catalog.SubmitArtwork(ctx, catalog.Submission{
		Title:         title,
		Description:   description,
		Category:      category,
		ImageURL:      imageURL,
		StartingPrice: price,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("✓ %q listed as artwork %d at %.2f.\n", artwork.Title, artwork.ID, artwork.Price)

	return nil
}
