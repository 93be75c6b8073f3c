package cli

import (
	"context"
	"fmt"

	"github.com/vulnlab/accesslab/internal/client/storage"
)

// runLogout стирает локальную сессию. Сервер об этом не узнает: выданный
// токен остается рабочим до истечения exp, отзыва не существует.
func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.storage.DeleteSession(ctx); err != nil {
		if err == storage.ErrSessionNotFound {
			c.io.Println("No active session.")
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	c.io.Println("Logged out. Note: the token itself stays valid until it expires.")
	return nil
}
