// Package catalog exposes the gallery's artist and artwork listings,
// search, and artwork submission for artist accounts.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/kunsthaus/canvasbid/internal/models"
	"github.com/kunsthaus/canvasbid/internal/validation"
	pkgapi "github.com/kunsthaus/canvasbid/pkg/api"
)

// API is the slice of the backend client the catalog reads public
// listings through.
type API interface {
	Artists(ctx context.Context) (*pkgapi.ArtistsResponse, error)
	Artworks(ctx context.Context) (*pkgapi.ArtworksResponse, error)
	Search(ctx context.Context, query string) (*pkgapi.SearchResponse, error)
}

// Session is the identity dependency for the authorized catalog
// operations. Satisfied by *session.Service.
type Session interface {
	IsAuthenticated() bool
	CurrentUser() *models.Identity
	Do(ctx context.Context, method, path string, body, result any) error
}

// Submission is the input for listing a new artwork.
type Submission struct {
	Title         string
	Description   string
	Category      string
	ImageURL      string
	StartingPrice float64
}

// SearchResult groups one search query's matches.
type SearchResult struct {
	Query    string
	Artworks []models.Artwork
	Artists  []models.Artist
	Total    int
}

// Service reads the public catalog and submits artworks for artist
// accounts. Stateless; every call goes to the backend.
type Service struct {
	api     API
	session Session
	logger  *slog.Logger
}

// New creates the catalog service.
func New(api API, sess Session, logger *slog.Logger) *Service {
	return &Service{api: api, session: sess, logger: logger}
}

// Artists fetches the gallery artist listing.
func (s *Service) Artists(ctx context.Context) ([]models.Artist, error) {
	resp, err := s.api.Artists(ctx)
	if err != nil {
		return nil, fmt.Errorf("artist listing failed: %w", err)
	}

	artists := make([]models.Artist, 0, len(resp.Artists))
	for _, p := range resp.Artists {
		artists = append(artists, artistFromPayload(p))
	}
	return artists, nil
}

// Artworks fetches the public artwork catalog.
func (s *Service) Artworks(ctx context.Context) ([]models.Artwork, error) {
	resp, err := s.api.Artworks(ctx)
	if err != nil {
		return nil, fmt.Errorf("artwork listing failed: %w", err)
	}

	return artworksFromPayload(resp.Artworks), nil
}

// Search queries artworks and artists by free text.
func (s *Service) Search(ctx context.Context, query string) (*SearchResult, error) {
	resp, err := s.api.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	result := &SearchResult{
		Query:    resp.Query,
		Artworks: artworksFromPayload(resp.Artworks),
		Artists:  make([]models.Artist, 0, len(resp.Artists)),
		Total:    resp.TotalResults,
	}
	for _, p := range resp.Artists {
		result.Artists = append(result.Artists, artistFromPayload(p))
	}
	return result, nil
}

// SubmitArtwork lists a new artwork under the signed-in artist.
// Preconditions are checked locally: the caller must be signed in with
// an artist account, the title must be non-empty and the starting
// price a valid amount. The backend enforces the same rules.
func (s *Service) SubmitArtwork(ctx context.Context, sub Submission) (*models.Artwork, error) {
	if !s.session.IsAuthenticated() {
		return nil, fmt.Errorf("please log in to submit artworks")
	}
	identity := s.session.CurrentUser()
	if identity == nil || !identity.IsArtist {
		return nil, fmt.Errorf("only artist accounts can submit artworks")
	}
	if sub.Title == "" {
		return nil, fmt.Errorf("artwork title is required")
	}
	if err := validation.ValidateBidAmount(sub.StartingPrice); err != nil {
		return nil, fmt.Errorf("invalid starting price: %w", err)
	}

	var resp pkgapi.CreateArtworkResponse
	err := s.session.Do(ctx, http.MethodPost, "/api/artworks", pkgapi.CreateArtworkRequest{
		Title:         sub.Title,
		Description:   sub.Description,
		Category:      sub.Category,
		ImageURL:      sub.ImageURL,
		StartingPrice: sub.StartingPrice,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("artwork submission failed: %w", err)
	}

	artwork := artworkFromPayload(resp.Artwork)
	s.logger.Info("artwork submitted", "artwork_id", artwork.ID, "title", artwork.Title)
	return &artwork, nil
}

// MyArtworks fetches the signed-in user's own submissions.
func (s *Service) MyArtworks(ctx context.Context) ([]models.Artwork, error) {
	var resp pkgapi.UserArtworksResponse
	if err := s.session.Do(ctx, http.MethodGet, "/api/user/artworks", nil, &resp); err != nil {
		return nil, fmt.Errorf("own artwork listing failed: %w", err)
	}

	return artworksFromPayload(resp.Artworks), nil
}
