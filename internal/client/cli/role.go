package cli

import (
	"context"
	"fmt"
	"time"
)

// runRole меняет роль записи id. Если это собственная запись, сервер
// перевыпускает токен, и клиент тут же подхватывает его в сессию.
func (c *Cli) runRole(ctx context.Context, args []string) error {
	id, err := parseIDArg(args, "accesslab role <id> <role>")
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: accesslab role <id> <role>")
	}
	role := args[1]

	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	resp, err := c.apiClient.ChangeRole(ctx, id, role)
	if err != nil {
		return err
	}

	c.io.Printf("Role of %s (id=%d) is now %s\n", resp.User.Username, resp.User.ID, resp.User.Role)

	if resp.NewToken != "" {
		session.Token = resp.NewToken
		session.User = resp.User
		session.SavedAt = time.Now()
		if err := c.storage.SaveSession(ctx, session); err != nil {
			return fmt.Errorf("failed to save reissued token: %w", err)
		}
		c.io.Println("Server reissued your token with the new role; session updated.")
	}

	return nil
}
