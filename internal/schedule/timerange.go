package schedule

import (
	"fmt"

	"quickconf/internal/domain"
)

// Grid bounds.
const (
	DefaultStartHour = 9
	DefaultEndHour   = 17
	// MaxEndHour caps the grid at 02:00 on the following day.
	MaxEndHour = 26
)

// ComputeTimeRange returns the visible hour range for the talks of one day,
// padded by one hour on each side.
//
// A talk's end hour is its local end.Hour, plus 24 when it ends on a later
// calendar day than it starts, plus one when end.Minute is non-zero. Talks
// spanning more than one midnight are under-represented by this rule.
func ComputeTimeRange(talks []*domain.EnrichedTalk) domain.TimeRange {
	if len(talks) == 0 {
		return domain.TimeRange{Start: DefaultStartHour, End: DefaultEndHour}
	}

	minH, maxH := 24, 0
	for _, t := range talks {
		s := t.Start.Hour()
		e := t.End.Hour()
		if !sameDay(t.Start, t.End) {
			e += 24
		}
		if t.End.Minute() > 0 {
			e++
		}
		minH = min(minH, s)
		maxH = max(maxH, e)
	}

	return domain.TimeRange{
		Start: max(0, minH-1),
		End:   min(MaxEndHour, maxH+1),
	}
}

// TimeSlots returns the hours [r.Start, r.End).
func TimeSlots(r domain.TimeRange) []domain.Slot {
	slots := make([]domain.Slot, 0, max(0, r.End-r.Start))
	for h := r.Start; h < r.End; h++ {
		slots = append(slots, domain.Slot{Hour: h, Label: FormatHour(h)})
	}
	return slots
}

// FormatHour renders an hour of the grid, e.g. 9 → "09:00", 25 → "01:00 (+1d)".
func FormatHour(h int) string {
	offset := h / 24
	label := fmt.Sprintf("%02d:00", h%24)
	if offset > 0 {
		return fmt.Sprintf("%s (+%dd)", label, offset)
	}
	return label
}
