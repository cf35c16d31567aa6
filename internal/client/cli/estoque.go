package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/iudanet/ajustaestoque/internal/models"
)

func (c *Cli) runEstoque(ctx context.Context, args []string) error {
	var filter string
	if len(args) > 0 {
		filter = args[0]
	}
	status, ok := models.ParseStockStatus(filter)
	if !ok {
		return fmt.Errorf("unknown status %q. Use: todos, baixo, ok, excesso, indefinido", filter)
	}

	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	products, err := c.apiClient.GetProducts(ctx, session.Token)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	selected := models.FilterByStatus(products, status)

	c.io.Printf("=== Stock diagnostics (%s) ===\n", status)
	c.io.Println()

	if len(selected) == 0 {
		c.io.Println("No products match this status.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CODE\tDESCRIPTION\tSTOCK\tAWAITING\tMIN\tMAX\tSALES 90D\tSTATUS")
	for i := range selected {
		p := &selected[i]
		_, _ = fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%s\t%s\t%g\t%s\n",
			p.Code, truncate(p.Description, 40), p.Stock, p.Awaiting,
			limit(p.Minimum), limit(p.Maximum), p.SalesLast90Days, models.Classify(p))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to print table: %w", err)
	}

	c.io.Println()
	c.io.Printf("%d of %d product(s)\n", len(selected), len(products))
	return nil
}

func limit(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}
