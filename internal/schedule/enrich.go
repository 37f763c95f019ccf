package schedule

import (
	"time"

	"quickconf/internal/domain"
)

// Enrich resolves speaker and stage slugs and localizes each talk to loc.
//
// A nil collection means it has not been loaded; the result is then empty.
// Speakers are returned in speaker-collection order, unmatched slugs are dropped
// and an unmatched stage leaves Stage nil. Talk order is preserved.
func Enrich(talks []*domain.Talk, speakers []*domain.Speaker, stages []*domain.Stage, loc *time.Location) []*domain.EnrichedTalk {
	if talks == nil || speakers == nil || stages == nil {
		return []*domain.EnrichedTalk{}
	}
	if loc == nil {
		loc = time.UTC
	}

	stageBySlug := make(map[string]*domain.Stage, len(stages))
	for _, st := range stages {
		if _, ok := stageBySlug[st.Slug]; !ok {
			stageBySlug[st.Slug] = st
		}
	}

	out := make([]*domain.EnrichedTalk, 0, len(talks))
	for _, t := range talks {
		wanted := make(map[string]struct{}, len(t.Speakers))
		for _, slug := range t.Speakers {
			wanted[slug] = struct{}{}
		}
		hits := []*domain.Speaker{}
		for _, sp := range speakers {
			if _, ok := wanted[sp.Slug]; ok {
				hits = append(hits, sp)
			}
		}

		start := t.DateTime.UTC().In(loc)
		out = append(out, &domain.EnrichedTalk{
			Slug:         t.Slug,
			Type:         t.Type,
			Title:        t.Title,
			Speakers:     hits,
			Stage:        stageBySlug[t.Stage],
			Start:        start,
			End:          start.Add(time.Duration(t.Duration) * time.Minute),
			Duration:     t.Duration,
			Resources:    t.Resources,
			Abstract:     t.Abstract,
			AbstractHTML: t.AbstractHTML,
		})
	}
	return out
}
