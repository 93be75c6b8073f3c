package cli

import (
	"context"
)

func (c *Cli) runList(ctx context.Context) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	users, err := c.apiClient.ListUsers(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("Found %d users:\n", len(users))
	c.io.Println()
	for _, u := range users {
		c.io.Printf("  [%d] %-10s %-8s %s\n", u.ID, u.Username, u.Role, u.Email)
	}

	return nil
}
