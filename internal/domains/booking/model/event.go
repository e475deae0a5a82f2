package model

import "time"

const (
	EventTableName  = "booking_timeline_events"
	EventEntityName = "timeline_event"

	EventFieldID        = "id"
	EventFieldBookingID = "booking_id"
	EventFieldType      = "type"
	EventFieldTitle     = "title"
	EventFieldOccurred  = "occurred_at"
)

const (
	EventTypeCreated   = "created"
	EventTypePayment   = "payment"
	EventTypeCheckin   = "checkin"
	EventTypeCheckout  = "checkout"
	EventTypeModified  = "modified"
	EventTypeRefund    = "refund"
	EventTypeCancelled = "cancelled"
)

// TimelineEvent is one immutable fact in a booking's history. Events do not
// arrive pre-sorted; presentation ordering belongs to the timeline package.
type TimelineEvent struct {
	ID          string    `db:"id"`
	BookingID   string    `db:"booking_id"`
	Type        string    `db:"type"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	OccurredAt  time.Time `db:"occurred_at"`
	Icon        *string   `db:"icon"`
}
