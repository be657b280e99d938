package auction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	clientapi "github.com/kunsthaus/canvasbid/internal/client/api"
	"github.com/kunsthaus/canvasbid/internal/client/session"
	"github.com/kunsthaus/canvasbid/internal/client/storage"
	"github.com/kunsthaus/canvasbid/internal/client/view"
	"github.com/kunsthaus/canvasbid/internal/models"
	"github.com/kunsthaus/canvasbid/internal/validation"
	pkgapi "github.com/kunsthaus/canvasbid/pkg/api"
)

// MinimumIncrement is the fixed amount a new bid must clear the current
// price by.
const MinimumIncrement = 50

// ListingAPI is the slice of the backend client the controller reads
// unauthenticated listings through.
type ListingAPI interface {
	Auctions(ctx context.Context) (*pkgapi.AuctionsResponse, error)
	ArtworkBids(ctx context.Context, artworkID int) (*pkgapi.BidsResponse, error)
}

// Session is the identity dependency: who is signed in, and the
// authorized-request path for bid submission. Satisfied by
// *session.Service.
type Session interface {
	IsAuthenticated() bool
	CurrentUser() *models.Identity
	Do(ctx context.Context, method, path string, body, result any) error
}

// bidSnapshot captures the last confirmed values of one auction while
// an optimistic update is pending on it.
type bidSnapshot struct {
	currentBid *float64
	history    []models.Bid
	bidCount   int
	hadHistory bool
}

// Controller owns the in-memory auction collection for the displayed
// view: periodic refresh, client-side filtering, minimum-bid math and
// the optimistic bid protocol. Confirmed state always comes from the
// backend listing; local mutations are provisional until the next
// refresh overwrites them.
type Controller struct {
	api     ListingAPI
	session Session
	view    view.Renderer
	meta    storage.MetadataStorage
	logger  *slog.Logger
	now     func() time.Time

	mu        sync.Mutex
	auctions  []models.Auction
	filtered  []models.Auction
	criteria  Criteria
	histories map[int][]models.Bid
	pending   map[int]bidSnapshot
	loaded    bool
	closed    bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates an auction view controller. meta may be nil when no
// durable bookkeeping is wanted (tests).
func New(api ListingAPI, sess Session, renderer view.Renderer, meta storage.MetadataStorage, logger *slog.Logger) *Controller {
	return &Controller{
		api:       api,
		session:   sess,
		view:      renderer,
		meta:      meta,
		logger:    logger,
		now:       time.Now,
		histories: make(map[int][]models.Bid),
		pending:   make(map[int]bidSnapshot),
	}
}

// Refresh fetches the full listing and replaces the in-memory
// collection wholesale; entries missing from the response are dropped,
// and any pending optimistic state is superseded. focusID, when
// non-zero and present in the result, is highlighted through the
// renderer. On failure the collection is cleared - never a mix of old
// and new entries - and the renderer gets a non-fatal notice.
func (c *Controller) Refresh(ctx context.Context, focusID int) error {
	resp, err := c.api.Auctions(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		// The view is gone; a late result must not be applied.
		return nil
	}

	if err != nil {
		c.auctions = nil
		c.pending = make(map[int]bidSnapshot)
		c.loaded = true
		c.applyCriteriaLocked()
		c.view.RenderAuctions(nil)
		c.view.Notify(view.LevelWarn, "unable to load auctions, please try again")
		c.logger.Warn("auction refresh failed", "error", err)
		return fmt.Errorf("refresh failed: %w", err)
	}

	auctions := make([]models.Auction, 0, len(resp.Auctions))
	for _, p := range resp.Auctions {
		auctions = append(auctions, auctionFromPayload(p))
	}

	// Confirmed state overwrites anything still pending.
	c.auctions = auctions
	c.pending = make(map[int]bidSnapshot)
	c.loaded = true
	c.applyCriteriaLocked()

	if c.meta != nil {
		if err := c.meta.SaveLastRefresh(ctx, c.now().UTC()); err != nil {
			c.logger.Warn("failed to record refresh time", "error", err)
		}
	}

	c.view.RenderAuctions(c.filtered)
	if focusID != 0 {
		if _, ok := c.findLocked(focusID); ok {
			c.view.Highlight(focusID)
		}
	}

	c.logger.Debug("auctions refreshed", "count", len(auctions))
	return nil
}

// ApplyFilter recomputes the displayed subset from the in-memory
// collection. Pure recomputation, no network. Before the first
// refresh it only records the criteria.
func (c *Controller) ApplyFilter(criteria Criteria) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.criteria = criteria
	c.applyCriteriaLocked()
	if c.loaded {
		c.view.RenderAuctions(c.filtered)
	}
}

// applyCriteriaLocked re-derives filtered from auctions, preserving
// source order.
func (c *Controller) applyCriteriaLocked() {
	filtered := make([]models.Auction, 0, len(c.auctions))
	for i := range c.auctions {
		if c.criteria.Matches(&c.auctions[i]) {
			filtered = append(filtered, c.auctions[i])
		}
	}
	c.filtered = filtered
}

// MinimumBid returns the smallest acceptable bid for a: its effective
// price plus the fixed increment. Pure function.
func MinimumBid(a *models.Auction) float64 {
	return a.Price() + MinimumIncrement
}

// SubmitBid places a bid on the given auction. Preconditions are
// checked locally in order - signed-in, auction live, amount at least
// the minimum - and none of them costs a network call. On acceptance
// the auction is updated optimistically (current bid, bid count, a
// provisional history entry) until the next refresh confirms it; on
// rejection the optimistic update is rolled back and the verdict is
// returned. No automatic retry.
func (c *Controller) SubmitBid(ctx context.Context, auctionID int, amount float64) (*models.Bid, error) {
	if !c.session.IsAuthenticated() {
		return nil, &BidError{Reason: ReasonUnauthenticated, Message: "please log in to place bids"}
	}
	identity := c.session.CurrentUser()
	if identity == nil {
		return nil, &BidError{Reason: ReasonUnauthenticated, Message: "please log in to place bids"}
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, &BidError{Reason: ReasonNotLive, Message: "auction view is closed"}
	}

	target, ok := c.findLocked(auctionID)
	if !ok || target.Status != models.StatusLive {
		c.mu.Unlock()
		return nil, &BidError{Reason: ReasonNotLive, Message: "auction is not open for bidding"}
	}

	minimum := MinimumBid(target)
	if err := validation.ValidateBidAmount(amount); err != nil {
		c.mu.Unlock()
		return nil, &BidError{Reason: ReasonBelowMinimum, Minimum: minimum, Message: err.Error()}
	}
	if amount < minimum {
		c.mu.Unlock()
		return nil, &BidError{Reason: ReasonBelowMinimum, Minimum: minimum}
	}

	// Optimistic update, reconciled by the next refresh.
	c.pending[auctionID] = c.snapshotLocked(target)
	bid := models.Bid{
		BidderName: identity.Username,
		Amount:     amount,
		CreatedAt:  c.now().UTC(),
	}
	target.CurrentBid = &amount
	target.BidCount++
	c.histories[auctionID] = append([]models.Bid{bid}, c.histories[auctionID]...)
	c.applyCriteriaLocked()
	c.mu.Unlock()

	var resp pkgapi.PlaceBidResponse
	err := c.session.Do(ctx, http.MethodPost, "/api/bids/", pkgapi.PlaceBidRequest{
		Amount:    amount,
		ArtworkID: auctionID,
	}, &resp)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		// Too late to matter either way; the state is being torn down.
		return nil, &BidError{Reason: ReasonNetwork, Message: "auction view is closed", Err: err}
	}

	if err != nil {
		c.rollbackLocked(auctionID)
		c.applyCriteriaLocked()
		return nil, classifyBidErr(err)
	}

	delete(c.pending, auctionID)
	c.view.RenderAuctions(c.filtered)
	c.logger.Info("bid placed", "auction_id", auctionID, "amount", amount)
	return &bid, nil
}

// rollbackLocked restores the last confirmed values after a rejected
// or failed submission.
func (c *Controller) rollbackLocked(auctionID int) {
	snapshot, ok := c.pending[auctionID]
	if !ok {
		return
	}
	delete(c.pending, auctionID)

	target, found := c.findLocked(auctionID)
	if !found {
		return
	}
	target.CurrentBid = snapshot.currentBid
	target.BidCount = snapshot.bidCount
	if snapshot.hadHistory {
		c.histories[auctionID] = snapshot.history
	} else {
		delete(c.histories, auctionID)
	}
}

func (c *Controller) snapshotLocked(a *models.Auction) bidSnapshot {
	snapshot := bidSnapshot{bidCount: a.BidCount}
	if a.CurrentBid != nil {
		bid := *a.CurrentBid
		snapshot.currentBid = &bid
	}
	if history, ok := c.histories[a.ID]; ok {
		snapshot.hadHistory = true
		snapshot.history = append([]models.Bid(nil), history...)
	}
	return snapshot
}

// BidHistory fetches the bid history for one auction, most recent
// first. An auction without bids yields an empty history, not an
// error. On failure the previously cached history, if any, stays
// untouched and a HistoryError is returned.
func (c *Controller) BidHistory(ctx context.Context, auctionID int) ([]models.Bid, error) {
	resp, err := c.api.ArtworkBids(ctx, auctionID)
	if err != nil {
		if errors.Is(err, clientapi.ErrDecode) {
			return nil, &HistoryError{Reason: HistoryDecode, Err: err}
		}
		return nil, &HistoryError{Reason: HistoryNetwork, Err: err}
	}

	bids := make([]models.Bid, 0, len(resp.Bids))
	for _, p := range resp.Bids {
		bids = append(bids, bidFromPayload(p))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return bids, nil
	}
	c.histories[auctionID] = bids
	return append([]models.Bid(nil), bids...), nil
}

// CachedHistory returns the locally known history for an auction, nil
// when none was fetched yet.
func (c *Controller) CachedHistory(auctionID int) []models.Bid {
	c.mu.Lock()
	defer c.mu.Unlock()
	history, ok := c.histories[auctionID]
	if !ok {
		return nil
	}
	return append([]models.Bid(nil), history...)
}

// Displayed returns a copy of the currently displayed (filtered)
// auction set, order preserved from the listing.
func (c *Controller) Displayed() []models.Auction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Auction(nil), c.filtered...)
}

// Auction returns a snapshot of one auction from the collection.
func (c *Controller) Auction(auctionID int) (models.Auction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if a, ok := c.findLocked(auctionID); ok {
		return *a, true
	}
	return models.Auction{}, false
}

func (c *Controller) findLocked(auctionID int) (*models.Auction, bool) {
	for i := range c.auctions {
		if c.auctions[i].ID == auctionID {
			return &c.auctions[i], true
		}
	}
	return nil, false
}

// Start launches the periodic refresh loop. Calling it twice without
// an intervening Stop is a no-op.
func (c *Controller) Start(ctx context.Context, interval time.Duration) {
	c.mu.Lock()
	if c.closed || c.cancel != nil {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	c.wg.Add(1)
	go c.pollLoop(ctx, interval)
}

func (c *Controller) pollLoop(ctx context.Context, interval time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Refresh already reports failures to the renderer.
			_ = c.Refresh(ctx, 0)
		}
	}
}

// Stop tears the controller down: the refresh loop ends and results of
// requests still in flight are discarded instead of being applied.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.closed = true
	c.mu.Unlock()

	c.wg.Wait()
}

// classifyBidErr maps submission failures onto the BidError taxonomy.
func classifyBidErr(err error) error {
	var authErr *session.AuthError
	if errors.As(err, &authErr) {
		return &BidError{Reason: ReasonUnauthenticated, Message: authErr.Message, Err: err}
	}

	var apiErr *clientapi.Error
	if errors.As(err, &apiErr) {
		return &BidError{Reason: ReasonRejected, Message: apiErr.Message, Err: err}
	}

	return &BidError{Reason: ReasonNetwork, Message: "bid could not reach the auction house", Err: err}
}
