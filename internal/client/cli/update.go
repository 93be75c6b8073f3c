package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vulnlab/accesslab/pkg/api"
)

// runUpdate интерактивно собирает patch профиля. Пустой ввод оставляет поле
// как есть. Цель — любой id, не только собственный.
func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	id, err := parseIDArg(args, "accesslab update <id>")
	if err != nil {
		return err
	}

	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	current, err := c.apiClient.GetUser(ctx, id)
	if err != nil {
		return err
	}

	c.io.Printf("Updating profile of %s (id=%d). Empty input keeps the current value.\n", current.Username, current.ID)
	c.io.Println()

	var req api.UpdateProfileRequest

	if v, err := c.io.ReadInput("Full name: "); err != nil {
		return err
	} else if v != "" {
		req.FullName = &v
	}

	if v, err := c.io.ReadInput("Phone: "); err != nil {
		return err
	} else if v != "" {
		req.Phone = &v
	}

	if v, err := c.io.ReadInput("Department: "); err != nil {
		return err
	} else if v != "" {
		req.Department = &v
	}

	if v, err := c.io.ReadInput("Salary: "); err != nil {
		return err
	} else if v != "" {
		salary, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid salary %q: must be a number", v)
		}
		req.Salary = &salary
	}

	if v, err := c.io.ReadInput("SSN: "); err != nil {
		return err
	} else if v != "" {
		req.SSN = &v
	}

	updated, err := c.apiClient.UpdateProfile(ctx, id, req)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Profile updated:")
	c.printUser(updated)

	return nil
}
