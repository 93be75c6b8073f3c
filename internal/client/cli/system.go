package cli

import (
	"context"
	"strings"
)

func (c *Cli) runSystem(ctx context.Context) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	info, err := c.apiClient.SystemInfo(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== System Info ===")
	c.io.Printf("Server:      %s\n", info.Server)
	c.io.Printf("Database:    %s\n", info.Database)
	c.io.Printf("Users:       %d\n", info.UsersCount)
	c.io.Printf("Admins:      %s\n", strings.Join(info.AdminUsers, ", "))
	c.io.Printf("Secret key:  %s\n", info.SecretKey)
	c.io.Printf("Last backup: %s\n", info.LastBackup)
	c.io.Printf("Debug mode:  %v\n", info.DebugMode)

	return nil
}
