package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"quickconf/internal/delivery/http/helpers"
	"quickconf/internal/domain"
	"quickconf/internal/schedule"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeScheduleService implements domain.ScheduleService over a fixed schedule.
type fakeScheduleService struct {
	sched      *domain.Schedule
	err        error
	calendar   string
	lastFilter domain.TalkFilter
	lastParams domain.PaginationParams
}

func (f *fakeScheduleService) GetSchedule(ctx context.Context) (*domain.Schedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sched, nil
}

func (f *fakeScheduleService) GetTalk(ctx context.Context, slug string) (*domain.EnrichedTalk, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.sched.Talks {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeScheduleService) ListTalks(ctx context.Context, filter domain.TalkFilter, p domain.PaginationParams) ([]*domain.EnrichedTalk, int, error) {
	f.lastFilter, f.lastParams = filter, p
	if f.err != nil {
		return nil, 0, f.err
	}
	var matched []*domain.EnrichedTalk
	for _, t := range f.sched.Talks {
		if filter.Match(t) {
			matched = append(matched, t)
		}
	}
	lo, hi := p.Bounds(len(matched))
	return matched[lo:hi], len(matched), nil
}

func (f *fakeScheduleService) WriteCalendar(ctx context.Context, w io.Writer) error {
	if f.err != nil {
		return f.err
	}
	_, err := io.WriteString(w, f.calendar)
	return err
}

// fakeSiteService implements domain.SiteService.
type fakeSiteService struct {
	name   string
	repo   domain.RepositoryDetails
	humans string
	err    error
}

func (f *fakeSiteService) ConferenceName() string { return f.name }

func (f *fakeSiteService) Repository() domain.RepositoryDetails { return f.repo }

func (f *fakeSiteService) HumansTxt(ctx context.Context) (string, error) {
	return f.humans, f.err
}

var berlin = mustLoadLocation("Europe/Berlin")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// testSchedule has two days in Europe/Berlin (UTC+2 in June).
// 2025-06-12: keynote 09:00-10:00 on main, talk 13:30-14:15 on side, grid 08:00-16:00.
// 2025-06-13: workshop 11:00-11:30 on main, grid 10:00-13:00.
func testSchedule() *domain.Schedule {
	talks := []*domain.Talk{
		{Slug: "opening", Type: domain.TalkTypeKeynote, Title: "Opening", Speakers: []string{"ada"},
			DateTime: time.Date(2025, time.June, 12, 7, 0, 0, 0, time.UTC), Duration: 60, Stage: "main"},
		{Slug: "generics", Type: domain.TalkTypeTalk, Title: "Generics",
			DateTime: time.Date(2025, time.June, 12, 11, 30, 0, 0, time.UTC), Duration: 45, Stage: "side"},
		{Slug: "hands-on", Type: domain.TalkTypeWorkshop, Title: "Hands-on",
			DateTime: time.Date(2025, time.June, 13, 9, 0, 0, 0, time.UTC), Duration: 30, Stage: "main"},
	}
	speakers := []*domain.Speaker{{Slug: "ada", Name: "Ada"}}
	stages := []*domain.Stage{{Slug: "main", Name: "Main Hall"}, {Slug: "side", Name: "Side Room"}}
	enriched := schedule.Enrich(talks, speakers, stages, berlin)
	return &domain.Schedule{
		TimeZone:      berlin.String(),
		Location:      berlin,
		Talks:         enriched,
		Speakers:      speakers,
		Stages:        stages,
		AvailableDays: schedule.AvailableDays(enriched),
		TalkTypes:     schedule.AvailableTalkTypes(enriched),
	}
}

func emptySchedule() *domain.Schedule {
	return &domain.Schedule{
		TimeZone: berlin.String(),
		Location: berlin,
		Talks:    []*domain.EnrichedTalk{},
		Stages:   []*domain.Stage{},
	}
}

// fakeClock returns a clock at 10:30 Berlin time on the first conference day.
func fakeClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(time.Date(2025, time.June, 12, 8, 30, 0, 0, time.UTC))
}

// decodeData decodes a success envelope's data into dest.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	require.Nil(t, envelope.Error, "success response must have error nil")
	require.NoError(t, json.Unmarshal(envelope.Data, dest))
}

// decodeError decodes an error envelope.
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) *helpers.APIError {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	require.Nil(t, envelope.Data)
	require.NotNil(t, envelope.Error, "error response must have error set")
	return envelope.Error
}
