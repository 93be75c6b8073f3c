package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/vulnlab/accesslab/internal/client/storage"
	"github.com/vulnlab/accesslab/pkg/api"
)

// runForge просит у сервера токен с произвольными claims и, по желанию,
// сразу кладет его в сессию. Работает без логина: это debug-ручка стенда.
func (c *Cli) runForge(ctx context.Context, args []string) error {
	c.io.Println("=== Forge Token ===")
	c.io.Println()

	idStr, err := c.io.ReadInput("User id: ")
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q: must be a number", idStr)
	}

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return err
	}

	role, err := c.io.ReadInput("Role: ")
	if err != nil {
		return err
	}

	resp, err := c.apiClient.ForgeToken(ctx, api.ForgeTokenRequest{
		ID:       id,
		Username: username,
		Role:     role,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Token: %s\n", resp.Token)

	save, err := c.io.ReadInput("Use it as the current session? [y/N]: ")
	if err != nil {
		return err
	}
	if save == "y" || save == "Y" {
		session := &storage.SessionData{
			Token:   resp.Token,
			User:    api.User{ID: id, Username: username, Role: role},
			SavedAt: time.Now(),
		}
		if err := c.storage.SaveSession(ctx, session); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		c.io.Println("Session replaced with the forged token.")
	}

	return nil
}
