package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kunsthaus/canvasbid/pkg/api"
)

func (c *Cli) runStatus(ctx context.Context) error {
	fmt.Println("=== Status ===")
	fmt.Println()

	if !c.session.IsAuthenticated() {
		fmt.Println("Session: not signed in")
		fmt.Println()
		fmt.Println("Run 'canvasbid login' to sign in.")
	} else {
		identity := c.session.CurrentUser()
		fmt.Println("Session: signed in")
		fmt.Printf("Username: %s\n", identity.Username)
		fmt.Printf("Email:    %s\n", identity.Email)
		if identity.IsArtist {
			fmt.Println("Role:     artist")
		} else {
			fmt.Println("Role:     collector")
		}

		if expiry, ok := c.session.TokenExpiry(); ok {
			fmt.Printf("Token expires: %s\n", expiry.Local().Format(time.RFC3339))
			if remaining := time.Until(expiry); remaining > 0 {
				fmt.Printf("Time remaining: %s\n", remaining.Round(time.Second))
			} else {
				fmt.Println("⚠️  Token has expired. Please login again.")
			}
		}

		// Confirm the session against the backend. A 401 here already
		// logged us out through the session controller.
		var profile api.Profile
		if err := c.session.Do(ctx, http.MethodGet, "/api/user/profile", nil, &profile); err != nil {
			fmt.Printf("Warning: could not verify the session with the server: %v\n", err)
		} else if profile.CreatedAt != "" {
			fmt.Printf("Member since: %s\n", profile.CreatedAt)
		}
	}

	fmt.Println()
	lastRefresh, err := c.meta.GetLastRefresh(ctx)
	switch {
	case err != nil:
		fmt.Printf("Warning: failed to read last refresh time: %v\n", err)
	case lastRefresh.IsZero():
		fmt.Println("Auctions have not been fetched yet. Run 'canvasbid auctions'.")
	default:
		fmt.Printf("Auctions last fetched: %s\n", lastRefresh.Local().Format(time.RFC822))
	}

	return nil
}
