// Package view defines the rendering collaborator the controllers talk
// to. The controllers never format output themselves; they hand state
// changes to a Renderer and move on.
package view

import "github.com/kunsthaus/canvasbid/internal/models"

// Level classifies notices handed to the renderer.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarn    Level = "warn"
	LevelError   Level = "error"
)

// Renderer receives display updates from the controllers.
type Renderer interface {
	// RenderAuctions replaces the displayed auction set.
	RenderAuctions(auctions []models.Auction)

	// Highlight draws attention to one auction after a focused
	// refresh.
	Highlight(auctionID int)

	// Notify shows a transient, non-fatal notice.
	Notify(level Level, message string)
}
