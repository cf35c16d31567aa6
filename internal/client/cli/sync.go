package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	result, err := c.syncService.Drain(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if result.Total == 0 && result.ShipmentsTotal == 0 {
		c.io.Println("✓ Nothing to synchronize")
		return nil
	}

	c.io.Printf("Queued:     %d\n", result.Total)
	c.io.Printf("Delivered:  %d\n", result.Delivered)
	if rejected := result.Rejected - result.Unauthorized; rejected > 0 {
		c.io.Printf("Rejected:   %d (server error, discarded; see log)\n", rejected)
	}
	if result.Unauthorized > 0 {
		c.io.Printf("Discarded:  %d (session expired, run 'ajustaestoque login' before syncing)\n", result.Unauthorized)
	}
	if result.Failed > 0 {
		c.io.Printf("Still queued: %d (no connection)\n", result.Failed)
	}

	if result.ShipmentsTotal > 0 {
		c.io.Println()
		c.io.Printf("Shipments queued:    %d\n", result.ShipmentsTotal)
		c.io.Printf("Shipments delivered: %d\n", result.ShipmentsDelivered)
		if result.ShipmentsRejected > 0 {
			c.io.Printf("Shipments rejected:  %d (discarded; see log)\n", result.ShipmentsRejected)
		}
		if result.ShipmentsFailed > 0 {
			c.io.Printf("Shipments still queued: %d (no connection)\n", result.ShipmentsFailed)
		}
	}

	c.io.Println()
	if result.Remaining() == 0 {
		c.io.Println("✓ Synchronization completed")
	} else {
		c.io.Println("⚠️  Some records could not be sent. They will be retried on the next sync.")
	}
	return nil
}

func (c *Cli) runInstallAssets(ctx context.Context) error {
	c.io.Println("Downloading application files...")
	if err := c.agent.InstallAssets(ctx); err != nil {
		return fmt.Errorf("failed to install assets: %w", err)
	}
	c.io.Println("✓ Application files cached for offline use")
	return nil
}
