package kernel_test

import (
	"testing"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPercentage(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"mid_scale", 55, false},
		{"full", 100, false},
		{"negative", -1, true},
		{"above_scale", 101, true},
		{"far_above_scale", 150, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := kernel.NewPercentage(tt.value)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, p.Value())
		})
	}
}

func TestPercentage_ZeroValue(t *testing.T) {
	t.Run("zero_value_is_zero_percent", func(t *testing.T) {
		var p kernel.Percentage
		assert.Equal(t, 0, p.Value())
	})
}

func TestPercentage_IsEqual(t *testing.T) {
	a, err := kernel.NewPercentage(40)
	require.NoError(t, err)
	b, err := kernel.NewPercentage(40)
	require.NoError(t, err)
	c, err := kernel.NewPercentage(41)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
