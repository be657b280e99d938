package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runHistory(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: canvasbid history <auction-id>")
	}

	auctionID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid auction id %q", args[0])
	}

	bids, err := c.auctions.BidHistory(ctx, auctionID)
	if err != nil {
		// A stale cached history is better than nothing.
		if cached := c.auctions.CachedHistory(auctionID); cached != nil {
			fmt.Printf("Warning: %v\nShowing the last known history:\n\n", err)
			c.renderer.RenderBids(cached)
			return nil
		}
		return err
	}

	fmt.Printf("=== Bid history for auction %d ===\n\n", auctionID)
	c.renderer.RenderBids(bids)

	return nil
}
