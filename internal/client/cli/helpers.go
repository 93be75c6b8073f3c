package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vulnlab/accesslab/internal/client/storage"
	"github.com/vulnlab/accesslab/pkg/api"
)

// requireSession загружает сохраненную сессию и вешает токен на API клиент
func (c *Cli) requireSession(ctx context.Context) (*storage.SessionData, error) {
	session, err := c.storage.GetSession(ctx)
	if err != nil {
		if err == storage.ErrSessionNotFound {
			return nil, fmt.Errorf("not authenticated. Please run 'accesslab login' first")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	c.apiClient.SetToken(session.Token)
	return session, nil
}

// parseIDArg разбирает позиционный аргумент <id>
func parseIDArg(args []string, usage string) (int64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a number", args[0])
	}
	return id, nil
}

// printUser печатает запись пользователя со всеми полями профиля
func (c *Cli) printUser(u *api.User) {
	c.io.Printf("ID:       %d\n", u.ID)
	c.io.Printf("Username: %s\n", u.Username)
	c.io.Printf("Email:    %s\n", u.Email)
	c.io.Printf("Role:     %s\n", u.Role)
	if u.Profile != nil {
		c.io.Println("Profile:")
		c.io.Printf("  Full name:  %s\n", u.Profile.FullName)
		c.io.Printf("  Phone:      %s\n", u.Profile.Phone)
		c.io.Printf("  Department: %s\n", u.Profile.Department)
		c.io.Printf("  Salary:     %.2f\n", u.Profile.Salary)
		c.io.Printf("  SSN:        %s\n", u.Profile.SSN)
	}
}
