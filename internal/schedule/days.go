package schedule

import (
	"slices"
	"time"

	"quickconf/internal/domain"
)

// ISODate formats t as an ISO calendar date in its own location.
func ISODate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// AvailableDays returns the distinct local start dates of talks, sorted ascending.
func AvailableDays(talks []*domain.EnrichedTalk) []string {
	seen := make(map[string]struct{})
	days := []string{}
	for _, t := range talks {
		d := ISODate(t.Start)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// TalksForDay returns the talks whose local start date equals day, in input order.
func TalksForDay(talks []*domain.EnrichedTalk, day string) []*domain.EnrichedTalk {
	out := []*domain.EnrichedTalk{}
	for _, t := range talks {
		if ISODate(t.Start) == day {
			out = append(out, t)
		}
	}
	return out
}

// TalksForStage returns the talks whose resolved stage has the given slug.
func TalksForStage(talks []*domain.EnrichedTalk, stageSlug string) []*domain.EnrichedTalk {
	out := []*domain.EnrichedTalk{}
	for _, t := range talks {
		if t.Stage != nil && t.Stage.Slug == stageSlug {
			out = append(out, t)
		}
	}
	return out
}

// AvailableTalkTypes lists the talk types present, in order of first appearance.
func AvailableTalkTypes(talks []*domain.EnrichedTalk) []domain.TalkTypeOption {
	seen := make(map[domain.TalkType]struct{})
	out := []domain.TalkTypeOption{}
	for _, t := range talks {
		if _, ok := seen[t.Type]; ok {
			continue
		}
		seen[t.Type] = struct{}{}
		style := TalkTypeStyleFor(t.Type)
		out = append(out, domain.TalkTypeOption{Value: t.Type, Label: style.Label, Color: style.Legend})
	}
	return out
}
