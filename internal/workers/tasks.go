// internal/workers/tasks.go
package workers

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Task type names registered with the asynq mux.
const (
	TypeInventoryAudit = "inventory:audit"
	TypeExportSnapshot = "export:snapshot"
)

// ExportSnapshotPayload is the payload for a catalog snapshot task.
type ExportSnapshotPayload struct {
	Format string `json:"format"`
}

// NewInventoryAuditTask creates a task that recomputes and repairs the
// derived availability counts.
func NewInventoryAuditTask() (*asynq.Task, error) {
	return asynq.NewTask(TypeInventoryAudit, nil), nil
}

// NewExportSnapshotTask creates a task that writes a catalog snapshot to
// object storage.
func NewExportSnapshotTask(format string) (*asynq.Task, error) {
	payload, err := json.Marshal(ExportSnapshotPayload{Format: format})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return asynq.NewTask(TypeExportSnapshot, payload), nil
}
