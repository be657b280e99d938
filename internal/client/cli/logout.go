package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	fmt.Println("=== Logout ===")

	c.session.Logout(ctx)

	fmt.Println("✓ Signed out. Your local session has been cleared.")

	return nil
}
