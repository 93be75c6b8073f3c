package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// runToken разбирает сохраненный токен без какой-либо проверки подписи и
// показывает claims как есть.
func (c *Cli) runToken(ctx context.Context) error {
	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	parser := jwt.NewParser()
	tok, _, err := parser.ParseUnverified(session.Token, jwt.MapClaims{})
	if err != nil {
		return fmt.Errorf("failed to decode token: %w", err)
	}

	header, err := json.MarshalIndent(tok.Header, "", "  ")
	if err != nil {
		return err
	}
	claims, err := json.MarshalIndent(tok.Claims, "", "  ")
	if err != nil {
		return err
	}

	c.io.Println("=== Token (decoded, signature NOT verified) ===")
	c.io.Println("Header:")
	c.io.Printf("%s\n", header)
	c.io.Println("Claims:")
	c.io.Printf("%s\n", claims)

	if exp, err := tok.Claims.GetExpirationTime(); err == nil && exp != nil {
		c.io.Printf("Expires: %s\n", exp.Time.Format(time.RFC3339))
	}

	return nil
}
