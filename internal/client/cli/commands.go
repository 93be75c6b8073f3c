package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду. Ошибка уходит вызывающему; коды выхода — забота main.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "get":
		return c.runGet(ctx, args)
	case "list":
		return c.runList(ctx)
	case "update":
		return c.runUpdate(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "role":
		return c.runRole(ctx, args)
	case "system":
		return c.runSystem(ctx)
	case "token":
		return c.runToken(ctx)
	case "forge":
		return c.runForge(ctx, args)
	case "reset":
		return c.runReset(ctx)
	case "audit":
		return c.runAudit(ctx)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
