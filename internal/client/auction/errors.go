package auction

import "fmt"

// BidReason classifies bid submission failures.
type BidReason string

const (
	// ReasonUnauthenticated means no signed-in identity exists; the
	// submission is refused before any network call.
	ReasonUnauthenticated BidReason = "unauthenticated"
	// ReasonBelowMinimum means the amount is under the minimum bid;
	// the BidError carries the minimum that would have been accepted.
	ReasonBelowMinimum BidReason = "below_minimum"
	// ReasonNotLive means the auction is unknown or not open for
	// bidding.
	ReasonNotLive BidReason = "not_live"
	// ReasonRejected means the backend refused the bid, typically
	// because a concurrent higher bid landed first.
	ReasonRejected BidReason = "rejected_by_server"
	// ReasonNetwork means the submission never got a backend verdict.
	ReasonNetwork BidReason = "network"
)

// BidError is a failed bid submission with a machine-readable reason.
type BidError struct {
	Err     error
	Reason  BidReason
	Message string
	Minimum float64
}

func (e *BidError) Error() string {
	switch {
	case e.Reason == ReasonBelowMinimum:
		return fmt.Sprintf("bid rejected (%s): minimum bid is %.2f", e.Reason, e.Minimum)
	case e.Message != "":
		return fmt.Sprintf("bid rejected (%s): %s", e.Reason, e.Message)
	}
	return fmt.Sprintf("bid rejected (%s)", e.Reason)
}

func (e *BidError) Unwrap() error {
	return e.Err
}

// HistoryReason classifies bid history fetch failures.
type HistoryReason string

const (
	// HistoryNetwork means the request failed in transit or the
	// backend answered with an error status.
	HistoryNetwork HistoryReason = "network"
	// HistoryDecode means the response body could not be parsed.
	HistoryDecode HistoryReason = "decode"
)

// HistoryError is a failed bid history fetch. Previously cached history
// for the auction stays untouched when one is returned.
type HistoryError struct {
	Err    error
	Reason HistoryReason
}

func (e *HistoryError) Error() string {
	return fmt.Sprintf("bid history unavailable (%s): %v", e.Reason, e.Err)
}

func (e *HistoryError) Unwrap() error {
	return e.Err
}
