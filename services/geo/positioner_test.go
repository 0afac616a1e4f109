package geo

import (
	"context"
	"errors"
	"testing"

	"wrist_surgery_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestReportedPosition(t *testing.T) {
	ctx := context.Background()
	opts := models.DefaultPositionOptions()

	t.Run("Coordinates", func(t *testing.T) {
		p := NewReportedPosition(PositionReport{
			Supported: true,
			Latitude:  floatPtr(12.9981),
			Longitude: floatPtr(77.5707),
			Accuracy:  14,
		})
		assert.True(t, p.Supported())
		pos, err := p.CurrentPosition(ctx, opts)
		require.NoError(t, err)
		assert.Equal(t, 12.9981, pos.Latitude)
		assert.Equal(t, 77.5707, pos.Longitude)
		assert.Equal(t, 14.0, pos.Accuracy)
	})

	t.Run("Zero coordinates are a valid fix", func(t *testing.T) {
		p := NewReportedPosition(PositionReport{
			Supported: true,
			Latitude:  floatPtr(0),
			Longitude: floatPtr(0),
		})
		_, err := p.CurrentPosition(ctx, opts)
		assert.NoError(t, err)
	})

	t.Run("Out of range coordinates", func(t *testing.T) {
		p := NewReportedPosition(PositionReport{
			Supported: true,
			Latitude:  floatPtr(91),
			Longitude: floatPtr(0),
		})
		_, err := p.CurrentPosition(ctx, opts)
		var perr *models.PositionError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, models.PositionUnavailable, perr.Code)
	})

	codes := []struct {
		reported int
		expected models.PositionErrorCode
	}{
		{1, models.PositionPermissionDenied},
		{2, models.PositionUnavailable},
		{3, models.PositionTimeout},
		{0, models.PositionErrorUnknown},
		{42, models.PositionErrorUnknown},
	}
	for _, tc := range codes {
		t.Run("Error code "+tc.expected.String(), func(t *testing.T) {
			p := NewReportedPosition(PositionReport{Supported: true, ErrorCode: tc.reported, ErrorMessage: "denied"})
			_, err := p.CurrentPosition(ctx, opts)
			var perr *models.PositionError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tc.expected, perr.Code)
		})
	}

	t.Run("Unsupported", func(t *testing.T) {
		p := NewReportedPosition(PositionReport{Supported: false})
		assert.False(t, p.Supported())
	})
}
