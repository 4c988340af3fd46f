package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	event := NewEvent(EventDraw, "ventas")

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventDraw, event.Type)
	assert.Equal(t, "ventas", event.Sheet)
	assert.False(t, event.At.IsZero())
	assert.NotEqual(t, event.ID, NewEvent(EventDraw, "ventas").ID)
}

func TestMemoryAuditLog(t *testing.T) {
	ctx := context.Background()

	t.Run("Recent returns newest first", func(t *testing.T) {
		log := NewMemoryAuditLog(10)
		for _, n := range []int{1, 2, 3} {
			event := NewEvent(EventSaleRegistered, "ventas")
			event.Number = n
			require.NoError(t, log.Record(ctx, event))
		}

		events, err := log.Recent(ctx, 2)

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, 3, events[0].Number)
		assert.Equal(t, 2, events[1].Number)
	})

	t.Run("Keeps only the latest events", func(t *testing.T) {
		log := NewMemoryAuditLog(2)
		for _, n := range []int{1, 2, 3} {
			event := NewEvent(EventSaleRegistered, "ventas")
			event.Number = n
			require.NoError(t, log.Record(ctx, event))
		}

		events, err := log.Recent(ctx, 0)

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, 3, events[0].Number)
		assert.Equal(t, 2, events[1].Number)
	})

	t.Run("Empty log", func(t *testing.T) {
		events, err := NewMemoryAuditLog(0).Recent(ctx, 5)

		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
