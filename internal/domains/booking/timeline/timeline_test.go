package timeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/timeline"
)

func event(id, eventType string, occurredAt time.Time) model.TimelineEvent {
	return model.TimelineEvent{
		ID:         id,
		BookingID:  "booking-1",
		Type:       eventType,
		Title:      eventType,
		OccurredAt: occurredAt,
	}
}

func TestRender(t *testing.T) {
	day1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	t.Run("orders events most recent first with the marker last", func(t *testing.T) {
		entries, err := timeline.Render([]model.TimelineEvent{
			event("e1", model.EventTypeCreated, day1),
			event("e2", model.EventTypePayment, day1.Add(time.Hour)),
			event("e3", model.EventTypeCheckin, day1.AddDate(0, 0, 4)),
		})
		require.NoError(t, err)
		require.Len(t, entries, 4)

		assert.Equal(t, "e3", entries[0].Event.ID)
		assert.Equal(t, "e2", entries[1].Event.ID)
		assert.Equal(t, "e1", entries[2].Event.ID)
		assert.True(t, entries[3].Terminal)
		assert.Nil(t, entries[3].Event)

		assert.True(t, entries[0].Emphasized)
		assert.False(t, entries[1].Emphasized)
		assert.False(t, entries[2].Emphasized)
		assert.False(t, entries[3].Emphasized)
	})

	t.Run("equal timestamps keep their relative input order", func(t *testing.T) {
		input := []model.TimelineEvent{
			event("first", model.EventTypeCreated, day1),
			event("second", model.EventTypePayment, day1),
			event("third", model.EventTypeModified, day1),
		}

		for range 5 {
			entries, err := timeline.Render(input)
			require.NoError(t, err)
			require.Len(t, entries, 4)

			assert.Equal(t, "first", entries[0].Event.ID)
			assert.Equal(t, "second", entries[1].Event.ID)
			assert.Equal(t, "third", entries[2].Event.ID)
			assert.True(t, entries[0].Emphasized)
		}
	})

	t.Run("empty input renders only the marker, emphasized", func(t *testing.T) {
		entries, err := timeline.Render(nil)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		assert.True(t, entries[0].Terminal)
		assert.True(t, entries[0].Emphasized)
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		input := []model.TimelineEvent{
			event("e1", model.EventTypeCreated, day1),
			event("e2", model.EventTypeCheckin, day1.AddDate(0, 0, 4)),
		}

		_, err := timeline.Render(input)
		require.NoError(t, err)

		assert.Equal(t, "e1", input[0].ID)
		assert.Equal(t, "e2", input[1].ID)
	})

	t.Run("every fixed type has a descriptor", func(t *testing.T) {
		types := []string{
			model.EventTypeCreated,
			model.EventTypePayment,
			model.EventTypeCheckin,
			model.EventTypeCheckout,
			model.EventTypeModified,
			model.EventTypeRefund,
			model.EventTypeCancelled,
		}

		for _, eventType := range types {
			entries, err := timeline.Render([]model.TimelineEvent{event("e", eventType, day1)})
			require.NoError(t, err, "type %s", eventType)
			require.Len(t, entries, 2)

			assert.NotEmpty(t, entries[0].Descriptor.Icon, "type %s", eventType)
			assert.NotEmpty(t, entries[0].Descriptor.Color, "type %s", eventType)
		}
	})

	t.Run("an unknown type fails instead of defaulting", func(t *testing.T) {
		_, err := timeline.Render([]model.TimelineEvent{event("e", "teleported", day1)})

		require.Error(t, err)
		assert.ErrorIs(t, err, timeline.ErrInvalidEventType)
	})

	t.Run("an icon override replaces the descriptor icon only", func(t *testing.T) {
		icon := "sparkles"
		ev := event("e", model.EventTypePayment, day1)
		ev.Icon = &icon

		entries, err := timeline.Render([]model.TimelineEvent{ev})
		require.NoError(t, err)

		assert.Equal(t, "sparkles", entries[0].Descriptor.Icon)
		assert.Equal(t, "green", entries[0].Descriptor.Color)
	})
}
