// internal/workers/audit_processor.go
package workers

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/ibubooks/consign-be/internal/core/ports"
)

// AuditProcessor reconciles the derived copies_available counters against
// the consignment item ledger.
type AuditProcessor struct {
	inventory ports.InventoryService
	logger    *slog.Logger
}

// NewAuditProcessor creates a new audit processor
func NewAuditProcessor(inventory ports.InventoryService, logger *slog.Logger) *AuditProcessor {
	return &AuditProcessor{
		inventory: inventory,
		logger:    logger.With(slog.String("processor", "audit")),
	}
}

// ProcessAudit handles inventory audit tasks
func (p *AuditProcessor) ProcessAudit(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "starting inventory audit")

	corrected, err := p.inventory.Audit(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "inventory audit failed",
			slog.String("error", err.Error()))
		return err
	}

	if len(corrected) > 0 {
		p.logger.WarnContext(ctx, "inventory audit corrected drifted counts",
			slog.Int("corrected_count", len(corrected)),
			slog.Any("isbns", corrected))
	} else {
		p.logger.InfoContext(ctx, "inventory audit found no drift")
	}

	return nil
}
