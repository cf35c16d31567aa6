package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/iudanet/ajustaestoque/internal/models"
)

func (c *Cli) runPending(ctx context.Context) error {
	records, err := c.pending.GetAllPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to read pending adjustments: %w", err)
	}

	c.io.Println("=== Pending Adjustments ===")
	c.io.Println()

	if len(records) == 0 {
		c.io.Println("No adjustments waiting for synchronization.")
		return c.printPendingShipments(ctx)
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KEY\tSKU\tQTY\tCREATED\tREASON")
	for _, record := range records {
		adj, err := models.DecodeAdjustment(record.Payload)
		if err != nil {
			// в очереди может лежать произвольный JSON
			_, _ = fmt.Fprintf(w, "%d\t?\t?\t?\t%s\n", record.Key, truncate(string(record.Payload), 40))
			continue
		}
		created := "-"
		if !adj.CreatedAt.IsZero() {
			created = adj.CreatedAt.Local().Format(time.DateTime)
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%+d\t%s\t%s\n", record.Key, adj.SKU, adj.Quantity, created, adj.Reason)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to print table: %w", err)
	}

	c.io.Println()
	c.io.Printf("Total: %d\n", len(records))
	return c.printPendingShipments(ctx)
}

func (c *Cli) printPendingShipments(ctx context.Context) error {
	if c.shipments == nil {
		return nil
	}
	records, err := c.shipments.GetAllPendingShipments(ctx)
	if err != nil {
		return fmt.Errorf("failed to read pending shipments: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	c.io.Println()
	c.io.Println("=== Pending Shipments ===")
	c.io.Println()

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KEY\tTYPE\tITEMS\tCREATED\tRESPONSIBLE")
	for _, record := range records {
		shipment, err := models.DecodeShipment(record.Payload)
		if err != nil {
			_, _ = fmt.Fprintf(w, "%d\t?\t?\t?\t%s\n", record.Key, truncate(string(record.Payload), 40))
			continue
		}
		created := "-"
		if !shipment.CreatedAt.IsZero() {
			created = shipment.CreatedAt.Local().Format(time.DateTime)
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", record.Key, shipment.Kind, len(shipment.Items), created, shipment.Responsible)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to print table: %w", err)
	}

	c.io.Println()
	c.io.Printf("Total: %d\n", len(records))
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
