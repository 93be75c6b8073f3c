package cli

import (
	"context"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	id, err := parseIDArg(args, "accesslab delete <id>")
	if err != nil {
		return err
	}

	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	resp, err := c.apiClient.DeleteUser(ctx, id)
	if err != nil {
		return err
	}

	c.io.Println(resp.Message)
	return nil
}
