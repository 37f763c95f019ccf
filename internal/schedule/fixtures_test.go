package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quickconf/internal/domain"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func utc(y int, m time.Month, d, h, minute int) time.Time {
	return time.Date(y, m, d, h, minute, 0, 0, time.UTC)
}

func talk(slug string, at time.Time, duration int, stage string, speakers ...string) *domain.Talk {
	return &domain.Talk{
		Slug:     slug,
		Type:     domain.TalkTypeTalk,
		Title:    "Talk " + slug,
		Speakers: speakers,
		DateTime: at,
		Duration: duration,
		Stage:    stage,
	}
}

// enrichedAt builds an enriched talk directly in loc for range and geometry tests.
func enrichedAt(loc *time.Location, y int, m time.Month, d, h, minute, duration int) *domain.EnrichedTalk {
	start := time.Date(y, m, d, h, minute, 0, 0, loc)
	return &domain.EnrichedTalk{
		Slug:     "t",
		Type:     domain.TalkTypeTalk,
		Start:    start,
		End:      start.Add(time.Duration(duration) * time.Minute),
		Duration: duration,
	}
}

func testStages() []*domain.Stage {
	return []*domain.Stage{
		{Slug: "main", Name: "Main Hall"},
		{Slug: "side", Name: "Side Room", Place: "Building B"},
	}
}

func testSpeakers() []*domain.Speaker {
	return []*domain.Speaker{
		{Slug: "ada-lovelace", Name: "Ada Lovelace"},
		{Slug: "grace-hopper", Name: "Grace Hopper"},
		{Slug: "alan-turing", Name: "Alan Turing"},
	}
}

// testSchedule is a two-day schedule in Europe/Berlin (UTC+2 in June).
func testSchedule(t *testing.T) *domain.Schedule {
	t.Helper()
	loc := mustLoc(t, "Europe/Berlin")
	talks := []*domain.Talk{
		talk("opening", utc(2025, time.June, 12, 7, 0), 60, "main", "ada-lovelace"),
		talk("compilers", utc(2025, time.June, 12, 8, 30), 45, "side", "grace-hopper"),
		talk("late", utc(2025, time.June, 12, 19, 0), 30, "main"),
		talk("day-two", utc(2025, time.June, 13, 9, 0), 30, "main", "alan-turing"),
	}
	enriched := Enrich(talks, testSpeakers(), testStages(), loc)
	return &domain.Schedule{
		TimeZone:      loc.String(),
		Location:      loc,
		Talks:         enriched,
		Stages:        testStages(),
		Speakers:      testSpeakers(),
		AvailableDays: AvailableDays(enriched),
		TalkTypes:     AvailableTalkTypes(enriched),
	}
}
