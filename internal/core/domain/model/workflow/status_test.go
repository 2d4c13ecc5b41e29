package workflow_test

import (
	"testing"

	"manufacturing/internal/core/domain/model/workflow"
	"manufacturing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    workflow.Status
		wantErr bool
	}{
		{"pending", workflow.Pending, false},
		{"in_progress", workflow.InProgress, false},
		{"completed", workflow.Completed, false},
		{"on_hold", workflow.OnHold, false},
		{"rejected", workflow.Rejected, false},
		{"approved", workflow.Unknown, true},
		{"", workflow.Unknown, true},
		{"PENDING", workflow.Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := workflow.StatusFromString(tt.input)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", workflow.Pending.String())
	assert.Equal(t, "in_progress", workflow.InProgress.String())
	assert.Equal(t, "completed", workflow.Completed.String())
	assert.Equal(t, "on_hold", workflow.OnHold.String())
	assert.Equal(t, "rejected", workflow.Rejected.String())
	assert.Equal(t, "unknown", workflow.Unknown.String())
	assert.Equal(t, "unknown", workflow.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, workflow.Pending.Validate())
	require.NoError(t, workflow.Rejected.Validate())
	require.Error(t, workflow.Unknown.Validate())
	require.Error(t, workflow.Status(42).Validate())
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := []struct {
		from, to workflow.Status
	}{
		{workflow.Pending, workflow.InProgress},
		{workflow.Pending, workflow.OnHold},
		{workflow.Pending, workflow.Rejected},
		{workflow.InProgress, workflow.Completed},
		{workflow.InProgress, workflow.OnHold},
		{workflow.InProgress, workflow.Rejected},
		{workflow.OnHold, workflow.InProgress},
		{workflow.OnHold, workflow.Rejected},
		{workflow.Rejected, workflow.InProgress},
	}

	for _, tt := range allowed {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			got, err := tt.from.TransitionTo(tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.to, got)
		})
	}

	forbidden := []struct {
		from, to workflow.Status
	}{
		{workflow.Pending, workflow.Completed},
		{workflow.OnHold, workflow.Completed},
		{workflow.Rejected, workflow.Completed},
		{workflow.Rejected, workflow.OnHold},
		{workflow.Completed, workflow.InProgress},
		{workflow.Completed, workflow.Pending},
		{workflow.Completed, workflow.Rejected},
		{workflow.Completed, workflow.OnHold},
		{workflow.InProgress, workflow.Pending},
	}

	for _, tt := range forbidden {
		t.Run(tt.from.String()+"_to_"+tt.to.String()+"_forbidden", func(t *testing.T) {
			_, err := tt.from.TransitionTo(tt.to)
			require.ErrorIs(t, err, workflow.ErrInvalidStatusTransition)
		})
	}
}

func TestStatus_CompletedIsTerminal(t *testing.T) {
	assert.True(t, workflow.Completed.IsTerminal())
	assert.False(t, workflow.Pending.IsTerminal())
	assert.False(t, workflow.Rejected.IsTerminal())

	for _, next := range []workflow.Status{
		workflow.Pending, workflow.InProgress, workflow.OnHold, workflow.Rejected,
	} {
		assert.False(t, workflow.Completed.CanTransitionTo(next))
	}
}

func TestStatus_TransitionToUnknownRejected(t *testing.T) {
	_, err := workflow.Pending.TransitionTo(workflow.Unknown)
	require.Error(t, err)
}
