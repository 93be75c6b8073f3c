package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/vulnlab/accesslab/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	session, err := c.storage.GetSession(ctx)
	if err != nil {
		if err == storage.ErrSessionNotFound {
			c.io.Println("Not authenticated.")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	c.io.Println("=== Session ===")
	c.io.Printf("Username: %s\n", session.User.Username)
	c.io.Printf("ID:       %d\n", session.User.ID)
	c.io.Printf("Role:     %s\n", session.User.Role)
	c.io.Printf("Saved at: %s\n", session.SavedAt.Format(time.RFC3339))

	ok, err := c.storage.IsAuthenticated(ctx)
	if err != nil {
		return err
	}
	if ok {
		c.io.Println("Token:    valid (by local expiry check only)")
	} else {
		c.io.Println("Token:    expired")
	}

	return nil
}
