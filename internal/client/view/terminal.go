package view

import (
	"fmt"
	"io"
	"time"

	"github.com/kunsthaus/canvasbid/internal/models"
)

// Terminal renders auction state as plain text tables, the CLI stand-in
// for the gallery page.
type Terminal struct {
	w   io.Writer
	now func() time.Time
}

// NewTerminal creates a terminal renderer writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w, now: time.Now}
}

// RenderAuctions prints the auction listing.
func (t *Terminal) RenderAuctions(auctions []models.Auction) {
	if len(auctions) == 0 {
		fmt.Fprintln(t.w, "No auctions to show.")
		return
	}

	fmt.Fprintf(t.w, "%-4s  %-28s  %-20s  %-10s  %10s  %5s  %s\n",
		"ID", "TITLE", "ARTIST", "STATUS", "PRICE", "BIDS", "TIME LEFT")
	now := t.now()
	for i := range auctions {
		a := &auctions[i]
		fmt.Fprintf(t.w, "%-4d  %-28s  %-20s  %-10s  %10.2f  %5d  %s\n",
			a.ID,
			truncate(a.Title, 28),
			truncate(a.ArtistName, 20),
			a.Status,
			a.Price(),
			a.BidCount,
			formatRemaining(a, now),
		)
	}
}

// Highlight points at one auction in the listing.
func (t *Terminal) Highlight(auctionID int) {
	fmt.Fprintf(t.w, "→ auction %d is ready for your bid\n", auctionID)
}

// Notify prints a transient notice.
func (t *Terminal) Notify(level Level, message string) {
	fmt.Fprintf(t.w, "[%s] %s\n", level, message)
}

// RenderBids prints a bid history, most recent first.
func (t *Terminal) RenderBids(bids []models.Bid) {
	if len(bids) == 0 {
		fmt.Fprintln(t.w, "No bids yet. Be the first to bid!")
		return
	}

	for i, bid := range bids {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Fprintf(t.w, "%s %10.2f  %-20s  %s\n",
			marker, bid.Amount, truncate(bid.BidderName, 20), bid.CreatedAt.Local().Format(time.RFC822))
	}
}

func formatRemaining(a *models.Auction, now time.Time) string {
	if a.Status == models.StatusEnded {
		return "ended"
	}
	remaining := a.TimeRemaining(now)
	if remaining == 0 {
		return "closing"
	}
	return remaining.Round(time.Second).String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
