package auction

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/kunsthaus/canvasbid/internal/client/api"
	"github.com/kunsthaus/canvasbid/internal/client/session"
	"github.com/kunsthaus/canvasbid/internal/client/view"
	"github.com/kunsthaus/canvasbid/internal/models"
	pkgapi "github.com/kunsthaus/canvasbid/pkg/api"
)

type mockListingAPI struct {
	mu           sync.Mutex
	auctionsResp *pkgapi.AuctionsResponse
	auctionsErr  error
	bidsResp     *pkgapi.BidsResponse
	bidsErr      error
	auctionCalls int
}

func (m *mockListingAPI) Auctions(_ context.Context) (*pkgapi.AuctionsResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.auctionCalls++
	if m.auctionsErr != nil {
		return nil, m.auctionsErr
	}
	return m.auctionsResp, nil
}

func (m *mockListingAPI) ArtworkBids(_ context.Context, _ int) (*pkgapi.BidsResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bidsErr != nil {
		return nil, m.bidsErr
	}
	return m.bidsResp, nil
}

func (m *mockListingAPI) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.auctionCalls
}

type mockSession struct {
	identity *models.Identity
	doErr    error
	doCalls  int
	lastBody any
}

func (m *mockSession) IsAuthenticated() bool {
	return m.identity != nil
}

func (m *mockSession) CurrentUser() *models.Identity {
	if m.identity == nil {
		return nil
	}
	identity := *m.identity
	return &identity
}

func (m *mockSession) Do(_ context.Context, _, _ string, body, _ any) error {
	m.doCalls++
	m.lastBody = body
	return m.doErr
}

type mockRenderer struct {
	mu         sync.Mutex
	rendered   [][]models.Auction
	highlights []int
	notices    []string
}

func (m *mockRenderer) RenderAuctions(auctions []models.Auction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rendered = append(m.rendered, append([]models.Auction(nil), auctions...))
}

func (m *mockRenderer) Highlight(auctionID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.highlights = append(m.highlights, auctionID)
}

func (m *mockRenderer) Notify(_ view.Level, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notices = append(m.notices, message)
}

func (m *mockRenderer) renderCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rendered)
}

func (m *mockRenderer) lastRendered() []models.Auction {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.rendered) == 0 {
		return nil
	}
	return m.rendered[len(m.rendered)-1]
}

func testController(api *mockListingAPI, sess *mockSession) (*Controller, *mockRenderer) {
	renderer := &mockRenderer{}
	ctrl := New(api, sess, renderer, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return ctrl, renderer
}

func listing(auctions ...pkgapi.Auction) *pkgapi.AuctionsResponse {
	return &pkgapi.AuctionsResponse{Auctions: auctions}
}

func liveAuction(id int, startingBid float64) pkgapi.Auction {
	return pkgapi.Auction{
		ID:          id,
		Artwork:     pkgapi.Artwork{ID: id, Title: "Sunset Dreams", Artist: "Sarah Mitchell", Category: "abstract"},
		StartingBid: startingBid,
		Status:      "live",
		EndTime:     "2026-09-01T12:00:00",
	}
}

func TestController_Refresh(t *testing.T) {
	api := &mockListingAPI{auctionsResp: listing(liveAuction(9, 100), liveAuction(12, 1800))}
	ctrl, renderer := testController(api, &mockSession{})

	err := ctrl.Refresh(context.Background(), 0)
	require.NoError(t, err)

	displayed := ctrl.Displayed()
	require.Len(t, displayed, 2)
	assert.Equal(t, 9, displayed[0].ID)
	assert.Equal(t, "Sunset Dreams", displayed[0].Title)
	assert.Equal(t, 12, displayed[1].ID)

	require.Equal(t, 1, renderer.renderCount())
	assert.Len(t, renderer.lastRendered(), 2)
}

func TestController_Refresh_ReplacesWholesale(t *testing.T) {
	api := &mockListingAPI{auctionsResp: listing(liveAuction(9, 100), liveAuction(12, 1800))}
	ctrl, _ := testController(api, &mockSession{})

	require.NoError(t, ctrl.Refresh(context.Background(), 0))

	// Auction 12 disappears from the next listing.
	api.mu.Lock()
	api.auctionsResp = listing(liveAuction(9, 100))
	api.mu.Unlock()

	require.NoError(t, ctrl.Refresh(context.Background(), 0))

	displayed := ctrl.Displayed()
	require.Len(t, displayed, 1)
	assert.Equal(t, 9, displayed[0].ID)

	_, ok := ctrl.Auction(12)
	assert.False(t, ok, "entries missing from the listing must be dropped")
}

func TestController_Refresh_Failure(t *testing.T) {
	api := &mockListingAPI{auctionsResp: listing(liveAuction(9, 100))}
	ctrl, renderer := testController(api, &mockSession{})

	require.NoError(t, ctrl.Refresh(context.Background(), 0))
	require.Len(t, ctrl.Displayed(), 1)

	api.mu.Lock()
	api.auctionsErr = errors.New("connection refused")
	api.mu.Unlock()

	err := ctrl.Refresh(context.Background(), 0)
	require.Error(t, err)

	// Never a mix of old and new entries.
	assert.Empty(t, ctrl.Displayed())
	require.NotEmpty(t, renderer.notices)
	assert.Contains(t, renderer.notices[len(renderer.notices)-1], "unable to load auctions")
}

func TestController_Refresh_Focus(t *testing.T) {
	api := &mockListingAPI{auctionsResp: listing(liveAuction(9, 100), liveAuction(12, 1800))}
	ctrl, renderer := testController(api, &mockSession{})

	require.NoError(t, ctrl.Refresh(context.Background(), 12))
	assert.Equal(t, []int{12}, renderer.highlights)

	// A focus id absent from the listing is silently ignored.
	require.NoError(t, ctrl.Refresh(context.Background(), 999))
	assert.Equal(t, []int{12}, renderer.highlights)
}

func TestController_Refresh_AfterStopDiscarded(t *testing.T) {
	api := &mockListingAPI{auctionsResp: listing(liveAuction(9, 100))}
	ctrl, renderer := testController(api, &mockSession{})

	ctrl.Stop()

	err := ctrl.Refresh(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, ctrl.Displayed())
	assert.Zero(t, renderer.renderCount())
}

func TestController_ApplyFilter(t *testing.T) {
	auctions := []pkgapi.Auction{
		{ID: 1, Artwork: pkgapi.Artwork{Category: "abstract"}, StartingBid: 100, Status: "live"},
		{ID: 2, Artwork: pkgapi.Artwork{Category: "abstract"}, StartingBid: 900, Status: "live"},
		{ID: 3, Artwork: pkgapi.Artwork{Category: "landscape"}, StartingBid: 150, Status: "live"},
		{ID: 4, Artwork: pkgapi.Artwork{Category: "abstract"}, StartingBid: 200, Status: "ended"},
		{ID: 5, Artwork: pkgapi.Artwork{Category: "abstract"}, StartingBid: 450, Status: "live"},
		{ID: 6, Artwork: pkgapi.Artwork{Category: "portrait"}, StartingBid: 300, Status: "upcoming"},
		{ID: 7, Artwork: pkgapi.Artwork{Category: "abstract"}, StartingBid: 499, Status: "live"},
		{ID: 8, Artwork: pkgapi.Artwork{Category: "abstract"}, StartingBid: 500, Status: "live"},
		{ID: 9, Artwork: pkgapi.Artwork{Category: "abstract"}, StartingBid: 501, Status: "live"},
		{ID: 10, Artwork: pkgapi.Artwork{Category: "landscape"}, StartingBid: 5200, Status: "live"},
	}
	api := &mockListingAPI{auctionsResp: listing(auctions...)}
	ctrl, _ := testController(api, &mockSession{})
	require.NoError(t, ctrl.Refresh(context.Background(), 0))

	// All criteria combine with AND.
	ctrl.ApplyFilter(Criteria{
		Status:     models.StatusLive,
		Category:   "abstract",
		PriceRange: &PriceRange{Min: 100, Max: 500},
	})

	displayed := ctrl.Displayed()
	ids := make([]int, 0, len(displayed))
	for _, a := range displayed {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int{1, 5, 7, 8}, ids, "listing order must be preserved")

	// Clearing the criteria restores the full collection.
	ctrl.ApplyFilter(Criteria{})
	assert.Len(t, ctrl.Displayed(), len(auctions))
}

func TestController_ApplyFilter_OpenEndedRange(t *testing.T) {
	api := &mockListingAPI{auctionsResp: listing(
		pkgapi.Auction{ID: 1, StartingBid: 4999, Status: "live"},
		pkgapi.Auction{ID: 2, StartingBid: 5000, Status: "live"},
		pkgapi.Auction{ID: 3, StartingBid: 99000, Status: "live"},
	)}
	ctrl, _ := testController(api, &mockSession{})
	require.NoError(t, ctrl.Refresh(context.Background(), 0))

	ctrl.ApplyFilter(Criteria{PriceRange: &PriceRange{Min: 5000}})

	displayed := ctrl.Displayed()
	require.Len(t, displayed, 2)
	assert.Equal(t, 2, displayed[0].ID)
	assert.Equal(t, 3, displayed[1].ID)
}

func TestController_ApplyFilter_BeforeFirstRefresh(t *testing.T) {
	api := &mockListingAPI{auctionsResp: listing(liveAuction(9, 100))}
	ctrl, renderer := testController(api, &mockSession{})

	// Criteria set before any data exist must not render an empty view.
	ctrl.ApplyFilter(Criteria{Status: models.StatusLive})
	assert.Zero(t, renderer.renderCount())

	require.NoError(t, ctrl.Refresh(context.Background(), 0))
	assert.Len(t, ctrl.Displayed(), 1)
}

func TestMinimumBid(t *testing.T) {
	noBids := models.Auction{StartingBid: 100}
	assert.Equal(t, 150.0, MinimumBid(&noBids))

	current := 2050.0
	withBids := models.Auction{StartingBid: 1800, CurrentBid: &current}
	assert.Equal(t, 2100.0, MinimumBid(&withBids))
}

func TestController_SubmitBid(t *testing.T) {
	api := &mockListingAPI{auctionsResp: listing(liveAuction(9, 100))}
	sess := &mockSession{identity: &models.Identity{ID: 1, Username: "ann"}}
	ctrl, _ := testController(api, sess)
	require.NoError(t, ctrl.Refresh(context.Background(), 0))

	bid, err := ctrl.SubmitBid(context.Background(), 9, 150)
	require.NoError(t, err)
	require.NotNil(t, bid)
	assert.Equal(t, "ann", bid.BidderName)
	assert.Equal(t, 150.0, bid.Amount)

	// The optimistic update is visible immediately.
	updated, ok := ctrl.Auction(9)
	require.True(t, ok)
	require.NotNil(t, updated.CurrentBid)
	assert.Equal(t, 150.0, *updated.CurrentBid)
	assert.Equal(t, 1, updated.BidCount)

	history := ctrl.CachedHistory(9)
	require.Len(t, history, 1)
	assert.Equal(t, "ann", history[0].BidderName)

	req, ok := sess.lastBody.(pkgapi.PlaceBidRequest)
	require.True(t, ok)
	assert.Equal(t, 150.0, req.Amount)
	assert.Equal(t, 9, req.ArtworkID)
}

func TestController_SubmitBid_BelowMinimum(t *testing.T) {
	api := &mockListingAPI{auctionsResp: listing(liveAuction(9, 100))}
	sess := &mockSession{identity: &models.Identity{ID: 1, Username: "ann"}}
	ctrl, _ := testController(api, sess)
	require.NoError(t, ctrl.Refresh(context.Background(), 0))

	_, err := ctrl.SubmitBid(context.Background(), 9, 120)
	require.Error(t, err)

	var bidErr *BidError
	require.ErrorAs(t, err, &bidErr)
	assert.Equal(t, ReasonBelowMinimum, bidErr.Reason)
	assert.Equal(t, 150.0, bidErr.Minimum)
	assert.Zero(t, sess.doCalls, "an under-minimum bid never reaches the network")

	// Nothing changed.
	unchanged, ok := ctrl.Auction(9)
	require.True(t, ok)
	assert.Nil(t, unchanged.CurrentBid)
	assert.Zero(t, unchanged.BidCount)
}

func TestController_SubmitBid_Unauthenticated(t *testing.T) {
	api := &mockListingAPI{auctionsResp: listing(liveAuction(9, 100))}
	sess := &mockSession{}
	ctrl, _ := testController(api, sess)
	require.NoError(t, ctrl.Refresh(context.Background(), 0))

	_, err := ctrl.SubmitBid(context.Background(), 9, 150)
	require.Error(t, err)

	var bidErr *BidError
	require.ErrorAs(t, err, &bidErr)
	assert.Equal(t, ReasonUnauthenticated, bidErr.Reason)
	assert.Zero(t, sess.doCalls)
}

func TestController_SubmitBid_NotLive(t *testing.T) {
	ended := liveAuction(4, 200)
	ended.Status = "ended"
	api := &mockListingAPI{auctionsResp: listing(ended)}
	sess := &mockSession{identity: &models.Identity{ID: 1, Username: "ann"}}
	ctrl, _ := testController(api, sess)
	require.NoError(t, ctrl.Refresh(context.Background(), 0))

	tests := []struct {
		name      string
		auctionID int
	}{
		{name: "ended auction", auctionID: 4},
		{name: "unknown auction", auctionID: 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ctrl.SubmitBid(context.Background(), tt.auctionID, 1000)
			require.Error(t, err)

			var bidErr *BidError
			require.ErrorAs(t, err, &bidErr)
			assert.Equal(t, ReasonNotLive, bidErr.Reason)
		})
	}
	assert.Zero(t, sess.doCalls)
}

func TestController_SubmitBid_RejectedRollsBack(t *testing.T) {
	api := &mockListingAPI{auctionsResp: listing(liveAuction(9, 100))}
	sess := &mockSession{
		identity: &models.Identity{ID: 1, Username: "ann"},
		doErr:    &clientapi.Error{StatusCode: http.StatusBadRequest, Message: "Bid must be higher than current bid"},
	}
	ctrl, _ := testController(api, sess)
	require.NoError(t, ctrl.Refresh(context.Background(), 0))

	_, err := ctrl.SubmitBid(context.Background(), 9, 150)
	require.Error(t, err)

	var bidErr *BidError
	require.ErrorAs(t, err, &bidErr)
	assert.Equal(t, ReasonRejected, bidErr.Reason)

	// The optimistic update was undone.
	restored, ok := ctrl.Auction(9)
	require.True(t, ok)
	assert.Nil(t, restored.CurrentBid)
	assert.Zero(t, restored.BidCount)
	assert.Nil(t, ctrl.CachedHistory(9))
}

func TestController_SubmitBid_RollbackKeepsEarlierHistory(t *testing.T) {
	current := 200.0
	withBid := liveAuction(9, 100)
	withBid.CurrentBid = &current
	withBid.BidCount = 1

	api := &mockListingAPI{
		auctionsResp: listing(withBid),
		bidsResp: &pkgapi.BidsResponse{Bids: []pkgapi.Bid{
			{BidderName: "bob", Amount: 200, CreatedAt: "2026-08-30T10:00:00"},
		}},
	}
	sess := &mockSession{identity: &models.Identity{ID: 1, Username: "ann"}}
	ctrl, _ := testController(api, sess)
	require.NoError(t, ctrl.Refresh(context.Background(), 0))

	_, err := ctrl.BidHistory(context.Background(), 9)
	require.NoError(t, err)

	sess.doErr = &clientapi.Error{StatusCode: http.StatusBadRequest, Message: "outbid"}
	_, err = ctrl.SubmitBid(context.Background(), 9, 250)
	require.Error(t, err)

	restored, ok := ctrl.Auction(9)
	require.True(t, ok)
	require.NotNil(t, restored.CurrentBid)
	assert.Equal(t, 200.0, *restored.CurrentBid)
	assert.Equal(t, 1, restored.BidCount)

	history := ctrl.CachedHistory(9)
	require.Len(t, history, 1)
	assert.Equal(t, "bob", history[0].BidderName)
}

func TestController_SubmitBid_NetworkError(t *testing.T) {
	api := &mockListingAPI{auctionsResp: listing(liveAuction(9, 100))}
	sess := &mockSession{
		identity: &models.Identity{ID: 1, Username: "ann"},
		doErr:    errors.New("connection reset"),
	}
	ctrl, _ := testController(api, sess)
	require.NoError(t, ctrl.Refresh(context.Background(), 0))

	_, err := ctrl.SubmitBid(context.Background(), 9, 150)
	require.Error(t, err)

	var bidErr *BidError
	require.ErrorAs(t, err, &bidErr)
	assert.Equal(t, ReasonNetwork, bidErr.Reason)

	restored, ok := ctrl.Auction(9)
	require.True(t, ok)
	assert.Nil(t, restored.CurrentBid)
}

func TestController_SubmitBid_SessionExpired(t *testing.T) {
	api := &mockListingAPI{auctionsResp: listing(liveAuction(9, 100))}
	sess := &mockSession{
		identity: &models.Identity{ID: 1, Username: "ann"},
		doErr:    &session.AuthError{Reason: session.ReasonExpired, Message: "session expired, please log in again"},
	}
	ctrl, _ := testController(api, sess)
	require.NoError(t, ctrl.Refresh(context.Background(), 0))

	_, err := ctrl.SubmitBid(context.Background(), 9, 150)
	require.Error(t, err)

	var bidErr *BidError
	require.ErrorAs(t, err, &bidErr)
	assert.Equal(t, ReasonUnauthenticated, bidErr.Reason)
}

func TestController_RefreshSupersedesPendingBid(t *testing.T) {
	api := &mockListingAPI{auctionsResp: listing(liveAuction(9, 100))}
	sess := &mockSession{identity: &models.Identity{ID: 1, Username: "ann"}}
	ctrl, _ := testController(api, sess)
	require.NoError(t, ctrl.Refresh(context.Background(), 0))

	_, err := ctrl.SubmitBid(context.Background(), 9, 150)
	require.NoError(t, err)

	// The backend confirms a different current bid; it wins.
	confirmed := 175.0
	refreshed := liveAuction(9, 100)
	refreshed.CurrentBid = &confirmed
	refreshed.BidCount = 2
	api.mu.Lock()
	api.auctionsResp = listing(refreshed)
	api.mu.Unlock()

	require.NoError(t, ctrl.Refresh(context.Background(), 0))

	got, ok := ctrl.Auction(9)
	require.True(t, ok)
	require.NotNil(t, got.CurrentBid)
	assert.Equal(t, 175.0, *got.CurrentBid)
	assert.Equal(t, 2, got.BidCount)
}

func TestController_BidHistory(t *testing.T) {
	api := &mockListingAPI{
		bidsResp: &pkgapi.BidsResponse{Bids: []pkgapi.Bid{
			{BidderName: "carol", Amount: 300, CreatedAt: "2026-08-30T12:00:00"},
			{BidderName: "bob", Amount: 250, CreatedAt: "2026-08-30T11:00:00"},
			{BidderName: "ann", Amount: 200, CreatedAt: "2026-08-30T10:00:00"},
		}},
	}
	ctrl, _ := testController(api, &mockSession{})

	bids, err := ctrl.BidHistory(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, bids, 3)
	assert.Equal(t, "carol", bids[0].BidderName, "most recent bid first")
	assert.Equal(t, "ann", bids[2].BidderName)

	cached := ctrl.CachedHistory(9)
	assert.Equal(t, bids, cached)
}

func TestController_BidHistory_Empty(t *testing.T) {
	api := &mockListingAPI{bidsResp: &pkgapi.BidsResponse{}}
	ctrl, _ := testController(api, &mockSession{})

	bids, err := ctrl.BidHistory(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, bids)
}

func TestController_BidHistory_FailureKeepsCache(t *testing.T) {
	api := &mockListingAPI{
		bidsResp: &pkgapi.BidsResponse{Bids: []pkgapi.Bid{
			{BidderName: "ann", Amount: 200, CreatedAt: "2026-08-30T10:00:00"},
		}},
	}
	ctrl, _ := testController(api, &mockSession{})

	_, err := ctrl.BidHistory(context.Background(), 9)
	require.NoError(t, err)

	api.mu.Lock()
	api.bidsErr = errors.New("connection refused")
	api.mu.Unlock()

	_, err = ctrl.BidHistory(context.Background(), 9)
	require.Error(t, err)

	var histErr *HistoryError
	require.ErrorAs(t, err, &histErr)
	assert.Equal(t, HistoryNetwork, histErr.Reason)

	cached := ctrl.CachedHistory(9)
	require.Len(t, cached, 1)
	assert.Equal(t, "ann", cached[0].BidderName)
}

func TestController_BidHistory_DecodeError(t *testing.T) {
	api := &mockListingAPI{bidsErr: clientapi.ErrDecode}
	ctrl, _ := testController(api, &mockSession{})

	_, err := ctrl.BidHistory(context.Background(), 9)
	require.Error(t, err)

	var histErr *HistoryError
	require.ErrorAs(t, err, &histErr)
	assert.Equal(t, HistoryDecode, histErr.Reason)
}

func TestController_StartStop(t *testing.T) {
	api := &mockListingAPI{auctionsResp: listing(liveAuction(9, 100))}
	ctrl, _ := testController(api, &mockSession{})

	ctrl.Start(context.Background(), 10*time.Millisecond)

	require.Eventually(t, func() bool {
		return api.calls() >= 2
	}, time.Second, 5*time.Millisecond)

	ctrl.Stop()
	calls := api.calls()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, api.calls(), "no refreshes after Stop")
}

func TestController_StartTwice(t *testing.T) {
	api := &mockListingAPI{auctionsResp: listing(liveAuction(9, 100))}
	ctrl, _ := testController(api, &mockSession{})

	ctrl.Start(context.Background(), time.Hour)
	ctrl.Start(context.Background(), time.Hour)
	ctrl.Stop()
}

func TestController_SubmitBid_AfterStop(t *testing.T) {
	api := &mockListingAPI{auctionsResp: listing(liveAuction(9, 100))}
	sess := &mockSession{identity: &models.Identity{ID: 1, Username: "ann"}}
	ctrl, _ := testController(api, sess)
	require.NoError(t, ctrl.Refresh(context.Background(), 0))

	ctrl.Stop()

	_, err := ctrl.SubmitBid(context.Background(), 9, 150)
	require.Error(t, err)
	assert.Zero(t, sess.doCalls)
}
