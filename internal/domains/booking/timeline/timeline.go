package timeline

import (
	"fmt"
	"sort"

	"lodge/internal/domains/booking/model"
)

// ErrInvalidEventType reports an event whose type is outside the fixed set.
// History rendering fails rather than defaulting: a made-up descriptor would
// misrepresent the booking's history to the guest.
var ErrInvalidEventType = fmt.Errorf("invalid timeline event type")

// Descriptor is the presentation pair for one entry: an icon category and a
// color class. The mapping from event type to descriptor is total over the
// fixed type set.
type Descriptor struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Entry is one display-ready timeline row. Exactly one of Event/terminal is
// meaningful: the synthetic journey-start marker carries no backing event.
type Entry struct {
	Event      *model.TimelineEvent `json:"event,omitempty"`
	Descriptor Descriptor           `json:"descriptor"`
	Emphasized bool                 `json:"emphasized"`
	Terminal   bool                 `json:"terminal"`
	Title      string               `json:"title"`
}

const terminalTitle = "Booking journey started"

func descriptorFor(eventType string) (Descriptor, error) {
	switch eventType {
	case model.EventTypeCreated:
		return Descriptor{Icon: "calendar-plus", Color: "blue"}, nil
	case model.EventTypePayment:
		return Descriptor{Icon: "credit-card", Color: "green"}, nil
	case model.EventTypeCheckin:
		return Descriptor{Icon: "door-open", Color: "teal"}, nil
	case model.EventTypeCheckout:
		return Descriptor{Icon: "door-closed", Color: "slate"}, nil
	case model.EventTypeModified:
		return Descriptor{Icon: "pencil", Color: "amber"}, nil
	case model.EventTypeRefund:
		return Descriptor{Icon: "rotate-ccw", Color: "purple"}, nil
	case model.EventTypeCancelled:
		return Descriptor{Icon: "x-circle", Color: "red"}, nil
	default:
		return Descriptor{}, fmt.Errorf("%w: %q", ErrInvalidEventType, eventType)
	}
}

// Render turns an unordered set of events into the display sequence: strictly
// descending by timestamp (equal timestamps keep their relative input order),
// each entry annotated with its descriptor, the most recent entry emphasized,
// and the synthetic journey-start marker appended last. The input is never
// mutated. An empty input renders as just the marker, emphasized.
func Render(events []model.TimelineEvent) ([]Entry, error) {
	sorted := make([]model.TimelineEvent, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.After(sorted[j].OccurredAt)
	})

	entries := make([]Entry, 0, len(sorted)+1)

	for i := range sorted {
		descriptor, err := descriptorFor(sorted[i].Type)
		if err != nil {
			return nil, err
		}

		if sorted[i].Icon != nil {
			descriptor.Icon = *sorted[i].Icon
		}

		entries = append(entries, Entry{
			Event:      &sorted[i],
			Descriptor: descriptor,
			Title:      sorted[i].Title,
		})
	}

	// the marker is appended after sorting and never ordered among real events
	entries = append(entries, Entry{
		Descriptor: Descriptor{Icon: "flag", Color: "gray"},
		Terminal:   true,
		Title:      terminalTitle,
	})

	// emphasis is a property of position, not of event type
	entries[0].Emphasized = true

	return entries, nil
}
