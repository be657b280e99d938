package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/kunsthaus/canvasbid/internal/client/auction"
)

func (c *Cli) runBid(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: canvasbid bid <auction-id> <amount>")
	}

	auctionID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid auction id %q", args[0])
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid bid amount %q", args[1])
	}

	// Bids are validated against current auction state, so fetch the
	// listing first.
	if err := c.auctions.Refresh(ctx, auctionID); err != nil {
		return err
	}

	target, ok := c.auctions.Auction(auctionID)
	if ok {
		fmt.Printf("\nMinimum bid for %q: %.2f\n", target.Title, auction.MinimumBid(&target))
	}

	bid, err := c.auctions.SubmitBid(ctx, auctionID, amount)
	if err != nil {
		var bidErr *auction.BidError
		if errors.As(err, &bidErr) && bidErr.Reason == auction.ReasonBelowMinimum {
			return fmt.Errorf("%w (try %.2f or more)", err, bidErr.Minimum)
		}
		return err
	}

	fmt.Printf("\n✓ Bid of %.2f placed by %s.\n", bid.Amount, bid.BidderName)
	fmt.Println("The next refresh will confirm your bid against the auction house.")

	return nil
}
