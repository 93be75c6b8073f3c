package cli

import (
	"context"
	"time"
)

func (c *Cli) runAudit(ctx context.Context) error {
	resp, err := c.apiClient.Audit(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("%d recorded operations:\n", len(resp.Events))
	c.io.Println()
	for _, e := range resp.Events {
		c.io.Printf("  %s  %-16s caller=%s(id=%d,role=%s) target=%d %s\n",
			e.Time.Format(time.TimeOnly), e.Action,
			e.CallerUsername, e.CallerID, e.CallerRole,
			e.TargetID, e.Detail)
	}

	return nil
}
