// internal/workers/audit_processor_test.go
package workers

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ibubooks/consign-be/test/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessAudit_ReportsCorrections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inventory := mocks.NewMockInventoryService(ctrl)
	inventory.EXPECT().
		Audit(gomock.Any()).
		Return([]string{"9780131103627"}, nil)

	processor := NewAuditProcessor(inventory, testLogger())

	task, err := NewInventoryAuditTask()
	require.NoError(t, err)

	err = processor.ProcessAudit(context.Background(), task)
	assert.NoError(t, err)
}

func TestProcessAudit_PropagatesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inventory := mocks.NewMockInventoryService(ctrl)
	inventory.EXPECT().
		Audit(gomock.Any()).
		Return(nil, assert.AnError)

	processor := NewAuditProcessor(inventory, testLogger())

	err := processor.ProcessAudit(context.Background(), asynq.NewTask(TypeInventoryAudit, nil))
	assert.ErrorIs(t, err, assert.AnError)
}
