package auction

import (
	"time"

	"github.com/kunsthaus/canvasbid/internal/models"
	pkgapi "github.com/kunsthaus/canvasbid/pkg/api"
)

// backendTimeLayouts lists the timestamp shapes the backend emits:
// RFC 3339 and zone-less ISO 8601 (taken as UTC).
var backendTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func parseBackendTime(value string) time.Time {
	for _, layout := range backendTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t
		}
	}
	return time.Time{}
}

func auctionFromPayload(p pkgapi.Auction) models.Auction {
	a := models.Auction{
		ID:          p.ID,
		Title:       p.Artwork.Title,
		ArtistName:  p.Artwork.Artist,
		ImageURL:    p.Artwork.Image,
		Category:    p.Artwork.Category,
		StartingBid: p.StartingBid,
		Status:      models.AuctionStatus(p.Status),
		EndTime:     parseBackendTime(p.EndTime),
		BidCount:    p.BidCount,
	}
	if p.CurrentBid != nil {
		bid := *p.CurrentBid
		a.CurrentBid = &bid
	}
	return a
}

func bidFromPayload(p pkgapi.Bid) models.Bid {
	return models.Bid{
		BidderName: p.BidderName,
		Amount:     p.Amount,
		CreatedAt:  parseBackendTime(p.CreatedAt),
	}
}
