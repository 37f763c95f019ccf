package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickconf/internal/domain"
)

func TestComputeTimeRange(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		name  string
		talks []*domain.EnrichedTalk
		want  domain.TimeRange
	}{
		{
			name: "empty day uses default",
			want: domain.TimeRange{Start: 9, End: 17},
		},
		{
			name:  "partial end hour rounds up",
			talks: []*domain.EnrichedTalk{enrichedAt(loc, 2025, time.June, 12, 9, 15, 90)},
			want:  domain.TimeRange{Start: 8, End: 12},
		},
		{
			name:  "whole end hour is not rounded",
			talks: []*domain.EnrichedTalk{enrichedAt(loc, 2025, time.June, 12, 10, 0, 60)},
			want:  domain.TimeRange{Start: 9, End: 12},
		},
		{
			name:  "overnight talk is capped at 26",
			talks: []*domain.EnrichedTalk{enrichedAt(loc, 2025, time.June, 12, 23, 0, 180)},
			want:  domain.TimeRange{Start: 22, End: 26},
		},
		{
			name:  "ending at midnight counts as the next day",
			talks: []*domain.EnrichedTalk{enrichedAt(loc, 2025, time.June, 12, 23, 0, 60)},
			want:  domain.TimeRange{Start: 22, End: 25},
		},
		{
			name:  "start padding never goes below zero",
			talks: []*domain.EnrichedTalk{enrichedAt(loc, 2025, time.June, 12, 0, 30, 30)},
			want:  domain.TimeRange{Start: 0, End: 2},
		},
		{
			name: "min start and max end across talks",
			talks: []*domain.EnrichedTalk{
				enrichedAt(loc, 2025, time.June, 12, 13, 0, 30),
				enrichedAt(loc, 2025, time.June, 12, 10, 0, 45),
				enrichedAt(loc, 2025, time.June, 12, 16, 20, 20),
			},
			want: domain.TimeRange{Start: 9, End: 18},
		},
		{
			name:  "multi-day talk uses raw end hour",
			talks: []*domain.EnrichedTalk{enrichedAt(loc, 2025, time.June, 12, 10, 0, 48*60)},
			want:  domain.TimeRange{Start: 9, End: 26},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTimeRange(tt.talks)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeTimeRange_MultiDayUnderRepresented(t *testing.T) {
	// 23:00 + 25h ends 00:00 two days later; the rule only adds 24 once.
	talks := []*domain.EnrichedTalk{enrichedAt(time.UTC, 2025, time.June, 12, 23, 0, 25*60)}
	assert.Equal(t, domain.TimeRange{Start: 22, End: 25}, ComputeTimeRange(talks))

	// 06:00 + 25h ends 07:00 the next day: 7+24+1 padding is capped.
	talks = []*domain.EnrichedTalk{enrichedAt(time.UTC, 2025, time.June, 12, 6, 0, 25*60)}
	assert.Equal(t, domain.TimeRange{Start: 5, End: 26}, ComputeTimeRange(talks))
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots(domain.TimeRange{Start: 22, End: 26})
	require.Len(t, slots, 4)
	assert.Equal(t, []int{22, 23, 24, 25}, []int{slots[0].Hour, slots[1].Hour, slots[2].Hour, slots[3].Hour})
	assert.Equal(t, "22:00", slots[0].Label)
	assert.Equal(t, "00:00 (+1d)", slots[2].Label)
	assert.Equal(t, "01:00 (+1d)", slots[3].Label)

	assert.Empty(t, TimeSlots(domain.TimeRange{Start: 5, End: 5}))
}

func TestFormatHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "00:00"},
		{9, "09:00"},
		{23, "23:00"},
		{24, "00:00 (+1d)"},
		{25, "01:00 (+1d)"},
		{49, "01:00 (+2d)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHour(tt.hour), "hour %d", tt.hour)
	}
}
