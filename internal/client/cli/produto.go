package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/iudanet/ajustaestoque/internal/models"
)

func (c *Cli) runProduto(ctx context.Context, args []string) error {
	term := strings.TrimSpace(strings.Join(args, " "))
	if term == "" {
		return fmt.Errorf("missing search term. Usage: ajustaestoque produto <code|text>")
	}

	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	products, err := c.apiClient.GetProducts(ctx, session.Token)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	found := models.SearchProducts(products, term)
	if len(found) == 0 {
		c.io.Printf("No products found for %q.\n", term)
		return nil
	}

	// точное совпадение кода: карточка товара
	if len(found) == 1 && strings.EqualFold(found[0].Code, term) {
		p := &found[0]
		c.io.Printf("=== %s ===\n", p.Code)
		c.io.Printf("Description: %s\n", p.Description)
		if p.Location != "" {
			c.io.Printf("Location:    %s\n", p.Location)
		}
		c.io.Printf("Stock:       %g\n", p.Stock)
		c.io.Printf("Awaiting:    %g\n", p.Awaiting)
		c.io.Printf("Min / Max:   %s / %s\n", limit(p.Minimum), limit(p.Maximum))
		c.io.Printf("Sales 90d:   %g\n", p.SalesLast90Days)
		c.io.Printf("Status:      %s\n", models.Classify(p))
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CODE\tDESCRIPTION\tLOCATION\tSTOCK\tSTATUS")
	for i := range found {
		p := &found[i]
		location := p.Location
		if location == "" {
			location = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%s\n",
			p.Code, truncate(p.Description, 40), location, p.Stock, models.Classify(p))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to print table: %w", err)
	}

	c.io.Println()
	c.io.Printf("%d product(s) found\n", len(found))
	return nil
}
