package cli

import (
	"context"
)

func (c *Cli) runReset(ctx context.Context) error {
	resp, err := c.apiClient.ResetDatabase(ctx)
	if err != nil {
		return err
	}

	c.io.Println(resp.Message)
	c.io.Println("Note: previously issued tokens still parse; they now describe pre-reset state.")
	return nil
}
