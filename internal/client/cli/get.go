package cli

import (
	"context"
)

// runGet показывает запись по id. Сервер отдаст любую: id берется из
// аргумента, с identity сессии его никто не сверяет.
func (c *Cli) runGet(ctx context.Context, args []string) error {
	id, err := parseIDArg(args, "accesslab get <id>")
	if err != nil {
		return err
	}

	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	user, err := c.apiClient.GetUser(ctx, id)
	if err != nil {
		return err
	}

	c.printUser(user)
	return nil
}
