package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickconf/internal/domain"
)

func TestEnrich_SpeakersFollowCollectionOrder(t *testing.T) {
	talks := []*domain.Talk{
		talk("panel", utc(2025, time.June, 12, 9, 0), 60, "main", "alan-turing", "unknown", "ada-lovelace"),
	}
	got := Enrich(talks, testSpeakers(), testStages(), time.UTC)
	require.Len(t, got, 1)
	require.Len(t, got[0].Speakers, 2)
	assert.Equal(t, "ada-lovelace", got[0].Speakers[0].Slug)
	assert.Equal(t, "alan-turing", got[0].Speakers[1].Slug)
}

func TestEnrich_Stage(t *testing.T) {
	talks := []*domain.Talk{
		talk("a", utc(2025, time.June, 12, 9, 0), 30, "side"),
		talk("b", utc(2025, time.June, 12, 10, 0), 30, "nowhere"),
	}
	got := Enrich(talks, testSpeakers(), testStages(), time.UTC)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Stage)
	assert.Equal(t, "Side Room", got[0].Stage.Name)
	assert.Nil(t, got[1].Stage)
	assert.Equal(t, "", got[1].StageSlug())
	assert.Empty(t, got[1].Speakers)
	assert.NotNil(t, got[1].Speakers)
}

func TestEnrich_LocalizesAndAddsDuration(t *testing.T) {
	loc := mustLoc(t, "America/New_York")
	talks := []*domain.Talk{
		talk("a", utc(2025, time.March, 9, 3, 30), 90, "main"),
		talk("b", utc(2025, time.June, 12, 14, 0), 45, "main"),
	}
	got := Enrich(talks, testSpeakers(), testStages(), loc)
	require.Len(t, got, 2)

	for i, et := range got {
		assert.Equal(t, loc, et.Start.Location())
		assert.True(t, et.Start.Equal(talks[i].DateTime), "start is the same instant")
		assert.Equal(t, time.Duration(talks[i].Duration)*time.Minute, et.End.Sub(et.Start))
		assert.False(t, et.End.Before(et.Start))
	}
	assert.Equal(t, 22, got[0].Start.Hour(), "03:30Z is 22:30 EST the day before")
	assert.Equal(t, "2025-03-08", ISODate(got[0].Start))
	assert.Equal(t, 10, got[1].Start.Hour(), "14:00Z is 10:00 EDT")
}

func TestEnrich_PreservesOrder(t *testing.T) {
	talks := []*domain.Talk{
		talk("first", utc(2025, time.June, 12, 9, 0), 30, "main"),
		talk("second", utc(2025, time.June, 12, 9, 0), 30, "side"),
		talk("third", utc(2025, time.June, 12, 11, 0), 30, "main"),
	}
	got := Enrich(talks, testSpeakers(), testStages(), nil)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"first", "second", "third"}, []string{got[0].Slug, got[1].Slug, got[2].Slug})
	assert.Equal(t, time.UTC, got[0].Start.Location())
}

func TestEnrich_MissingCollectionYieldsEmpty(t *testing.T) {
	talks := []*domain.Talk{talk("a", utc(2025, time.June, 12, 9, 0), 30, "main")}

	tests := []struct {
		name     string
		talks    []*domain.Talk
		speakers []*domain.Speaker
		stages   []*domain.Stage
	}{
		{"talks missing", nil, testSpeakers(), testStages()},
		{"speakers missing", talks, nil, testStages()},
		{"stages missing", talks, testSpeakers(), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Enrich(tt.talks, tt.speakers, tt.stages, time.UTC)
			require.NotNil(t, got)
			assert.Empty(t, got)
		})
	}

	got := Enrich(talks, []*domain.Speaker{}, []*domain.Stage{}, time.UTC)
	require.Len(t, got, 1, "loaded but empty collections still enrich")
	assert.Nil(t, got[0].Stage)
}
