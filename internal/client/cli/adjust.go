package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	httpClient "github.com/iudanet/ajustaestoque/internal/client/api"
	"github.com/iudanet/ajustaestoque/internal/models"
)

func (c *Cli) runAdjust(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("adjust", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	offline := fs.Bool("offline", false, "Queue the adjustment without trying the network")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	rest := fs.Args()
	if len(rest) < 2 {
		return fmt.Errorf("missing arguments. Usage: ajustaestoque adjust [--offline] <sku> <qty> [reason]")
	}

	qty, err := strconv.ParseInt(rest[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid quantity %q: must be an integer", rest[1])
	}

	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}
	if session.User.IsReadOnly() {
		return fmt.Errorf("user %s has read-only access and cannot adjust stock", session.User.Email)
	}

	adj := &models.StockAdjustment{
		ID:        c.newID(),
		SKU:       rest[0],
		Quantity:  qty,
		Reason:    strings.Join(rest[2:], " "),
		User:      session.User.Code,
		CreatedAt: c.now().UTC(),
	}
	if err := adj.Validate(); err != nil {
		return fmt.Errorf("invalid adjustment: %w", err)
	}

	payload, err := json.Marshal(adj)
	if err != nil {
		return fmt.Errorf("failed to encode adjustment: %w", err)
	}

	if *offline {
		return c.enqueue(ctx, adj, payload)
	}

	res, err := c.apiClient.UpdateStock(ctx, session.Token, payload)
	if err != nil {
		if errors.Is(err, httpClient.ErrNetwork) {
			c.logger.Warn("Stock API unreachable, queueing adjustment", "sku", adj.SKU, "error", err)
			return c.enqueue(ctx, adj, payload)
		}
		return fmt.Errorf("failed to send adjustment: %w", err)
	}

	if !res.OK() {
		return fmt.Errorf("adjustment rejected by server: %s", res.Message)
	}

	c.io.Printf("✓ Stock of %s adjusted by %+d\n", adj.SKU, adj.Quantity)
	if res.Response != nil {
		if res.Response.Duplicate {
			c.io.Println("  (already applied earlier, not applied again)")
		}
		c.io.Printf("  New stock: %g\n", res.Response.NewStock)
	}
	return nil
}

// enqueue сохраняет корректировку в офлайн-очередь
func (c *Cli) enqueue(ctx context.Context, adj *models.StockAdjustment, payload json.RawMessage) error {
	key, err := c.pending.AddPending(ctx, payload)
	if err != nil {
		return fmt.Errorf("failed to queue adjustment: %w", err)
	}

	c.logger.Info("Adjustment queued", "key", key, "sku", adj.SKU, "id", adj.ID)
	c.io.Printf("⏳ Offline: adjustment of %s by %+d saved (#%d).\n", adj.SKU, adj.Quantity, key)
	c.io.Println("It will be sent when 'ajustaestoque serve' sees the connection, or run 'ajustaestoque sync'.")
	return nil
}
