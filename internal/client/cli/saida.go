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
	"text/tabwriter"

	httpClient "github.com/iudanet/ajustaestoque/internal/client/api"
	"github.com/iudanet/ajustaestoque/internal/models"
)

const saidaUsage = "ajustaestoque saida [--offline] [--responsavel NAME] <fabrica|garantia> SKU=QTY..."

func (c *Cli) runSaida(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("saida", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	offline := fs.Bool("offline", false, "Queue the shipment without trying the network")
	responsible := fs.String("responsavel", "", "Person responsible for the shipment")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	rest := fs.Args()
	if len(rest) < 2 {
		return fmt.Errorf("missing arguments. Usage: %s", saidaUsage)
	}

	kind, ok := models.ParseShipmentKind(strings.ToLower(rest[0]))
	if !ok {
		return fmt.Errorf("unknown shipment type %q. Use: fabrica, garantia", rest[0])
	}

	items, err := parseShipmentItems(rest[1:])
	if err != nil {
		return err
	}

	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}
	if session.User.IsReadOnly() {
		return fmt.Errorf("user %s has read-only access and cannot launch shipments", session.User.Email)
	}

	name := strings.TrimSpace(*responsible)
	if name == "" {
		name = session.User.Name
	}

	shipment := &models.Shipment{
		ID:          c.newID(),
		Kind:        kind,
		Responsible: name,
		User:        session.User.Code,
		Items:       items,
		// локальное время: дата заявки считается по дню на устройстве
		CreatedAt: c.now(),
	}
	if err := shipment.Validate(); err != nil {
		return fmt.Errorf("invalid shipment: %w", err)
	}

	if !*offline {
		proceed, err := c.checkShipmentStock(ctx, session.Token, shipment)
		if err != nil {
			return err
		}
		if !proceed {
			c.io.Println("Shipment cancelled.")
			return nil
		}
	}

	payload, err := json.Marshal(shipment)
	if err != nil {
		return fmt.Errorf("failed to encode shipment: %w", err)
	}

	if *offline {
		return c.enqueueShipment(ctx, shipment, payload)
	}

	res, err := c.apiClient.LaunchShipment(ctx, session.Token, kind, payload)
	if err != nil {
		if errors.Is(err, httpClient.ErrNetwork) {
			c.logger.Warn("Stock API unreachable, queueing shipment", "id", shipment.ID, "error", err)
			return c.enqueueShipment(ctx, shipment, payload)
		}
		return fmt.Errorf("failed to launch shipment: %w", err)
	}

	if !res.OK() {
		return fmt.Errorf("shipment rejected by server: %s", res.Message)
	}

	launched := shipment
	if res.Response != nil && res.Response.Data != nil {
		launched = res.Response.Data
	}

	c.io.Printf("✓ Shipment %s launched (%s, %d item(s))\n", launched.Requisition, kind, len(launched.Items))
	if res.Response != nil && res.Response.Duplicate {
		c.io.Println("  (already launched earlier, not launched again)")
	}
	return c.printShipmentItems(launched)
}

// parseShipmentItems разбирает аргументы вида SKU=QTY
func parseShipmentItems(args []string) ([]models.ShipmentItem, error) {
	items := make([]models.ShipmentItem, 0, len(args))
	for _, arg := range args {
		code, qty, found := strings.Cut(arg, "=")
		if !found || code == "" {
			return nil, fmt.Errorf("invalid item %q: expected SKU=QTY", arg)
		}
		n, err := strconv.ParseInt(qty, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity %q for %s: must be an integer", qty, code)
		}
		items = append(items, models.ShipmentItem{Code: code, Quantity: n})
	}
	return items, nil
}

// checkShipmentStock сверяет позиции с остатками. Без связи проверка
// пропускается; нехватка остатка требует подтверждения.
func (c *Cli) checkShipmentStock(ctx context.Context, token string, shipment *models.Shipment) (bool, error) {
	products, err := c.apiClient.GetProducts(ctx, token)
	if err != nil {
		c.logger.Warn("Failed to load products, skipping stock check", "error", err)
		return true, nil
	}

	var short []string
	for _, item := range shipment.Items {
		p, ok := models.FindProduct(products, item.Code)
		if !ok {
			return false, fmt.Errorf("product %s not found", item.Code)
		}
		if float64(item.Quantity) > p.Stock {
			short = append(short, fmt.Sprintf("%s: requested %d, in stock %g", item.Code, item.Quantity, p.Stock))
		}
	}

	if len(short) == 0 {
		return true, nil
	}

	c.io.Println("⚠️  Insufficient stock:")
	for _, line := range short {
		c.io.Printf("  %s\n", line)
	}
	answer, err := c.io.ReadInput("Continue anyway? [y/N]: ")
	if err != nil {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "sim":
		return true, nil
	default:
		return false, nil
	}
}

// enqueueShipment сохраняет заявку в офлайн-очередь отгрузок
func (c *Cli) enqueueShipment(ctx context.Context, shipment *models.Shipment, payload json.RawMessage) error {
	if c.shipments == nil {
		return fmt.Errorf("offline shipment queue is not available")
	}
	key, err := c.shipments.AddPendingShipment(ctx, payload)
	if err != nil {
		return fmt.Errorf("failed to queue shipment: %w", err)
	}

	c.logger.Info("Shipment queued", "key", key, "id", shipment.ID, "type", shipment.Kind)
	c.io.Printf("⏳ Offline: %s shipment with %d item(s) saved (#%d).\n", shipment.Kind, len(shipment.Items), key)
	c.io.Println("It will be sent when 'ajustaestoque serve' sees the connection, or run 'ajustaestoque sync'.")
	return nil
}

func (c *Cli) printShipmentItems(shipment *models.Shipment) error {
	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CODE\tDESCRIPTION\tLOCATION\tQTY\tSTATUS")
	for _, item := range shipment.Items {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			item.Code, truncate(orDash(item.Description), 40), orDash(item.Location), item.Quantity, orDash(item.Status))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to print table: %w", err)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
