package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kunsthaus/canvasbid/internal/client/auction"
	"github.com/kunsthaus/canvasbid/internal/models"
)

// parseFilterFlags builds filter criteria and an optional focus id from
// command arguments.
func parseFilterFlags(name string, args []string) (auction.Criteria, int, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	status := fs.String("status", "", "filter by status: upcoming, live, ended")
	category := fs.String("category", "", "filter by artwork category")
	minPrice := fs.Float64("min-price", 0, "minimum starting bid")
	maxPrice := fs.Float64("max-price", 0, "maximum starting bid (0 = unbounded)")
	focus := fs.Int("focus", 0, "highlight this auction id")

	if err := fs.Parse(args); err != nil {
		return auction.Criteria{}, 0, err
	}

	criteria := auction.Criteria{Category: *category}
	if *status != "" {
		s := models.AuctionStatus(*status)
		if !s.Valid() {
			return auction.Criteria{}, 0, fmt.Errorf("unknown status %q, want upcoming, live or ended", *status)
		}
		criteria.Status = s
	}
	if *minPrice > 0 || *maxPrice > 0 {
		criteria.PriceRange = &auction.PriceRange{Min: *minPrice, Max: *maxPrice}
	}

	return criteria, *focus, nil
}

func (c *Cli) runAuctions(ctx context.Context, args []string) error {
	criteria, focus, err := parseFilterFlags("auctions", args)
	if err != nil {
		return err
	}

	c.auctions.ApplyFilter(criteria)

	// Refresh renders through the terminal renderer; a failed fetch
	// degrades to an empty listing with a notice.
	_ = c.auctions.Refresh(ctx, focus)

	return nil
}

func (c *Cli) runWatch(ctx context.Context, args []string) error {
	criteria, focus, err := parseFilterFlags("watch", args)
	if err != nil {
		return err
	}

	c.auctions.ApplyFilter(criteria)
	_ = c.auctions.Refresh(ctx, focus)

	fmt.Printf("\nWatching auctions (refresh every %s). Press Ctrl-C to stop.\n\n", c.cfg.RefreshInterval)

	c.auctions.Start(ctx, c.cfg.RefreshInterval)
	defer c.auctions.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case <-stop:
	case <-ctx.Done():
	}

	fmt.Println("\nStopped watching.")
	return nil
}
