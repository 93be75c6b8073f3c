package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/vulnlab/accesslab/internal/client/storage"
	"github.com/vulnlab/accesslab/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	session := &storage.SessionData{
		Token:   resp.Token,
		User:    resp.User,
		SavedAt: time.Now(),
	}
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println()
	c.io.Println("Login successful!")
	c.io.Printf("Logged in as %s (id=%d, role=%s)\n", resp.User.Username, resp.User.ID, resp.User.Role)

	return nil
}
