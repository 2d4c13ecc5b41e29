package workflow_test

import (
	"testing"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/workflow"
	"manufacturing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkflow(t *testing.T) *workflow.Workflow {
	t.Helper()
	wf, err := workflow.NewWorkflow(kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return wf
}

func TestNewWorkflow(t *testing.T) {
	t.Run("creates_one_step_per_catalog_stage", func(t *testing.T) {
		orderID := kernel.NewUUID()
		now := time.Now()

		wf, err := workflow.NewWorkflow(orderID, now)

		require.NoError(t, err)
		require.NoError(t, wf.Validate())
		assert.True(t, wf.OrderID().IsEqual(orderID))
		require.Len(t, wf.Steps(), workflow.StageCount)

		for i, step := range wf.Steps() {
			assert.Equal(t, i+1, step.StepNumber())
		}
	})

	t.Run("seeds_first_step_in_progress_rest_pending", func(t *testing.T) {
		wf := newTestWorkflow(t)

		first := wf.Steps()[0]
		assert.Equal(t, workflow.InProgress, first.Status())
		assert.NotNil(t, first.StartedAt())
		assert.Equal(t, 1, wf.CurrentStepNumber())

		for _, step := range wf.Steps()[1:] {
			assert.Equal(t, workflow.Pending, step.Status())
			assert.Nil(t, step.StartedAt())
		}
	})

	t.Run("rejects_zero_order_id", func(t *testing.T) {
		_, err := workflow.NewWorkflow(kernel.UUID{}, time.Now())
		require.Error(t, err)
	})
}

func TestWorkflow_AssignEmployee(t *testing.T) {
	t.Run("sets_assignment_and_timestamp", func(t *testing.T) {
		wf := newTestWorkflow(t)
		employeeID := kernel.NewUUID()
		step := wf.Steps()[0]

		err := wf.AssignEmployee(step.ID(), employeeID, time.Now())

		require.NoError(t, err)
		require.NotNil(t, step.AssignedEmployeeID())
		assert.True(t, step.AssignedEmployeeID().IsEqual(employeeID))
		assert.NotNil(t, step.AssignedAt())
		assert.Equal(t, workflow.InProgress, step.Status(), "assignment must not change status")
	})

	t.Run("reassignment_overwrites", func(t *testing.T) {
		wf := newTestWorkflow(t)
		step := wf.Steps()[2]
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, wf.AssignEmployee(step.ID(), first, time.Now()))
		require.NoError(t, wf.AssignEmployee(step.ID(), second, time.Now()))

		assert.True(t, step.AssignedEmployeeID().IsEqual(second))
	})

	t.Run("unknown_step_returns_not_found", func(t *testing.T) {
		wf := newTestWorkflow(t)

		err := wf.AssignEmployee(kernel.NewUUID(), kernel.NewUUID(), time.Now())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("completed_step_rejects_assignment", func(t *testing.T) {
		wf := newTestWorkflow(t)
		step := wf.Steps()[0]
		require.NoError(t, wf.ChangeStepStatus(step.ID(), workflow.Completed, "", time.Now()))

		err := wf.AssignEmployee(step.ID(), kernel.NewUUID(), time.Now())

		require.ErrorIs(t, err, workflow.ErrStepIsCompleted)
	})
}

func TestWorkflow_ChangeStepStatus(t *testing.T) {
	t.Run("completion_stamps_completed_at", func(t *testing.T) {
		wf := newTestWorkflow(t)
		step := wf.Steps()[0]

		err := wf.ChangeStepStatus(step.ID(), workflow.Completed, "all documents verified", time.Now())

		require.NoError(t, err)
		assert.Equal(t, workflow.Completed, step.Status())
		assert.NotNil(t, step.CompletedAt())
		assert.Equal(t, "all documents verified", step.Notes())
	})

	t.Run("completing_cursor_step_advances_cursor_only", func(t *testing.T) {
		wf := newTestWorkflow(t)
		step1 := wf.Steps()[0]
		step2 := wf.Steps()[1]

		require.NoError(t, wf.ChangeStepStatus(step1.ID(), workflow.Completed, "", time.Now()))

		assert.Equal(t, 2, wf.CurrentStepNumber())
		assert.Equal(t, workflow.Pending, step2.Status(), "next step is not auto-started")
	})

	t.Run("completing_off_cursor_step_leaves_cursor", func(t *testing.T) {
		wf := newTestWorkflow(t)
		step3 := wf.Steps()[2]

		require.NoError(t, wf.ChangeStepStatus(step3.ID(), workflow.InProgress, "", time.Now()))
		require.NoError(t, wf.ChangeStepStatus(step3.ID(), workflow.Completed, "", time.Now()))

		assert.Equal(t, 1, wf.CurrentStepNumber())
	})

	t.Run("cursor_skips_steps_completed_out_of_order", func(t *testing.T) {
		wf := newTestWorkflow(t)
		now := time.Now()
		step1 := wf.Steps()[0]
		step2 := wf.Steps()[1]
		step3 := wf.Steps()[2]

		require.NoError(t, wf.ChangeStepStatus(step1.ID(), workflow.Completed, "", now))
		require.Equal(t, 2, wf.CurrentStepNumber())

		// Step 3 finishes early while the cursor waits on step 2.
		require.NoError(t, wf.ChangeStepStatus(step3.ID(), workflow.InProgress, "", now))
		require.NoError(t, wf.ChangeStepStatus(step3.ID(), workflow.Completed, "", now))
		require.Equal(t, 2, wf.CurrentStepNumber())

		require.NoError(t, wf.ChangeStepStatus(step2.ID(), workflow.InProgress, "", now))
		require.NoError(t, wf.ChangeStepStatus(step2.ID(), workflow.Completed, "", now))

		// The cursor jumps over the already-completed step 3 to step 4.
		assert.Equal(t, 4, wf.CurrentStepNumber())

		step4 := wf.Steps()[3]
		require.NoError(t, wf.ChangeStepStatus(step4.ID(), workflow.InProgress, "", now))
		require.NoError(t, wf.ChangeStepStatus(step4.ID(), workflow.Completed, "", now))
		assert.Equal(t, 5, wf.CurrentStepNumber())
	})

	t.Run("completing_last_step_keeps_cursor_at_last", func(t *testing.T) {
		wf := newTestWorkflow(t)
		now := time.Now()

		for _, step := range wf.Steps() {
			if step.Status() == workflow.Pending {
				require.NoError(t, wf.ChangeStepStatus(step.ID(), workflow.InProgress, "", now))
			}
			require.NoError(t, wf.ChangeStepStatus(step.ID(), workflow.Completed, "", now))
		}

		assert.Equal(t, workflow.StageCount, wf.CurrentStepNumber())
		assert.True(t, wf.IsComplete())
	})

	t.Run("pending_cannot_jump_to_completed", func(t *testing.T) {
		wf := newTestWorkflow(t)
		step2 := wf.Steps()[1]

		err := wf.ChangeStepStatus(step2.ID(), workflow.Completed, "", time.Now())

		require.ErrorIs(t, err, workflow.ErrInvalidStatusTransition)
		assert.Equal(t, workflow.Pending, step2.Status())
	})

	t.Run("on_hold_resume_keeps_first_started_at", func(t *testing.T) {
		wf := newTestWorkflow(t)
		step := wf.Steps()[0]
		firstStart := step.StartedAt()

		require.NoError(t, wf.ChangeStepStatus(step.ID(), workflow.OnHold, "", time.Now()))
		require.NoError(t, wf.ChangeStepStatus(step.ID(), workflow.InProgress, "", time.Now().Add(time.Hour)))

		assert.Equal(t, firstStart, step.StartedAt())
	})

	t.Run("rejected_step_can_be_reworked", func(t *testing.T) {
		wf := newTestWorkflow(t)
		step := wf.Steps()[0]

		require.NoError(t, wf.ChangeStepStatus(step.ID(), workflow.Rejected, "drawing mismatch", time.Now()))
		require.NoError(t, wf.ChangeStepStatus(step.ID(), workflow.InProgress, "", time.Now()))

		assert.Equal(t, workflow.InProgress, step.Status())
	})
}

func TestWorkflow_AttachDocuments(t *testing.T) {
	t.Run("appends_without_dedup", func(t *testing.T) {
		wf := newTestWorkflow(t)
		step := wf.Steps()[0]
		ref, err := workflow.NewDocumentRef("po-scan.pdf", "s3://docs/po-scan.pdf")
		require.NoError(t, err)

		require.NoError(t, wf.AttachDocuments(step.ID(), []workflow.DocumentRef{ref}))
		require.NoError(t, wf.AttachDocuments(step.ID(), []workflow.DocumentRef{ref}))

		assert.Len(t, step.Documents(), 2)
	})

	t.Run("rejects_empty_list", func(t *testing.T) {
		wf := newTestWorkflow(t)
		step := wf.Steps()[0]

		err := wf.AttachDocuments(step.ID(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreWorkflow(t *testing.T) {
	t.Run("round_trips_a_new_workflow", func(t *testing.T) {
		wf := newTestWorkflow(t)

		restored, err := workflow.RestoreWorkflow(wf.OrderID(), wf.CurrentStepNumber(), wf.Steps())

		require.NoError(t, err)
		assert.Equal(t, wf.CurrentStepNumber(), restored.CurrentStepNumber())
		assert.Len(t, restored.Steps(), workflow.StageCount)
	})

	t.Run("rejects_missing_steps", func(t *testing.T) {
		wf := newTestWorkflow(t)

		_, err := workflow.RestoreWorkflow(wf.OrderID(), 1, wf.Steps()[:workflow.StageCount-1])

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_duplicate_step_numbers", func(t *testing.T) {
		wf := newTestWorkflow(t)
		steps := wf.Steps()
		broken := append([]*workflow.Step{}, steps[:workflow.StageCount-1]...)
		broken = append(broken, steps[0])

		_, err := workflow.RestoreWorkflow(wf.OrderID(), 1, broken)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_out_of_range_cursor", func(t *testing.T) {
		wf := newTestWorkflow(t)

		_, err := workflow.RestoreWorkflow(wf.OrderID(), workflow.StageCount+1, wf.Steps())

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestStages(t *testing.T) {
	t.Run("catalog_is_ordered_and_stable", func(t *testing.T) {
		stages := workflow.Stages()

		require.Len(t, stages, 8)
		for i, stage := range stages {
			assert.Equal(t, i+1, stage.Number)
			assert.NotEmpty(t, stage.Type)
			assert.NotEmpty(t, stage.Name)
		}
		assert.Equal(t, workflow.StageClientPO, stages[0].Type)
		assert.Equal(t, workflow.StageDelivery, stages[7].Type)
	})

	t.Run("returned_slice_is_a_copy", func(t *testing.T) {
		stages := workflow.Stages()
		stages[0].Name = "tampered"

		assert.Equal(t, "Client PO", workflow.Stages()[0].Name)
	})
}

func TestStageTypeFromString(t *testing.T) {
	got, err := workflow.StageTypeFromString("quality_check")
	require.NoError(t, err)
	assert.Equal(t, workflow.StageQualityCheck, got)

	_, err = workflow.StageTypeFromString("painting")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
