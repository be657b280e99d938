package catalog

import (
	"github.com/kunsthaus/canvasbid/internal/models"
	pkgapi "github.com/kunsthaus/canvasbid/pkg/api"
)

func artistFromPayload(p pkgapi.Artist) models.Artist {
	return models.Artist{
		ID:        p.ID,
		Name:      p.Name,
		Bio:       p.Bio,
		Specialty: p.Specialty,
		ImageURL:  p.Image,
		Works:     p.Works,
		Featured:  p.Featured,
	}
}

func artworkFromPayload(p pkgapi.ArtworkListing) models.Artwork {
	return models.Artwork{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		ImageURL:    p.Image,
		ArtistName:  p.Artist,
		Price:       p.Price,
	}
}

func artworksFromPayload(payloads []pkgapi.ArtworkListing) []models.Artwork {
	artworks := make([]models.Artwork, 0, len(payloads))
	for _, p := range payloads {
		artworks = append(artworks, artworkFromPayload(p))
	}
	return artworks
}
