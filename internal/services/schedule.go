package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"quickconf/config"
	"quickconf/internal/domain"
	"quickconf/internal/schedule"
)

const defaultContextTimeout = 5 * time.Second

type scheduleService struct {
	content        domain.ContentRepository
	site           *config.SiteConfig
	loc            *time.Location
	logger         *slog.Logger
	clock          clockwork.Clock
	contextTimeout time.Duration
}

// NewScheduleService returns a ScheduleService over the content repository.
// Times are localized to the site's configured time zone.
func NewScheduleService(content domain.ContentRepository, site *config.SiteConfig, logger *slog.Logger, clock clockwork.Clock, timeout time.Duration) (domain.ScheduleService, error) {
	if site == nil {
		site = &config.SiteConfig{}
	}
	loc, err := site.Location()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if timeout <= 0 {
		timeout = defaultContextTimeout
	}
	return &scheduleService{
		content:        content,
		site:           site,
		loc:            loc,
		logger:         logger,
		clock:          clock,
		contextTimeout: timeout,
	}, nil
}

// GetSchedule fetches the three collections concurrently and enriches them once
// all have resolved. A failed fetch is logged and yields an empty schedule.
func (s *scheduleService) GetSchedule(ctx context.Context) (*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var (
		talks    []*domain.Talk
		speakers []*domain.Speaker
		stages   []*domain.Stage
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		talks, err = s.content.ListTalks(gctx)
		if err != nil {
			return fmt.Errorf("list talks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		speakers, err = s.content.ListSpeakers(gctx)
		if err != nil {
			return fmt.Errorf("list speakers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stages, err = s.content.ListStages(gctx)
		if err != nil {
			return fmt.Errorf("list stages: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return nil, err
		}
		s.logger.ErrorContext(ctx, "content unavailable, serving empty schedule", "err", err)
		talks, speakers, stages = nil, nil, nil
	}

	enriched := schedule.Enrich(talks, speakers, stages, s.loc)
	if stages == nil {
		stages = []*domain.Stage{}
	}
	if speakers == nil {
		speakers = []*domain.Speaker{}
	}
	return &domain.Schedule{
		TimeZone:      s.loc.String(),
		Location:      s.loc,
		Talks:         enriched,
		Speakers:      speakers,
		Stages:        stages,
		AvailableDays: schedule.AvailableDays(enriched),
		TalkTypes:     schedule.AvailableTalkTypes(enriched),
	}, nil
}

// GetTalk returns the enriched talk with the given slug or domain.ErrNotFound.
func (s *scheduleService) GetTalk(ctx context.Context, slug string) (*domain.EnrichedTalk, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	_, err := s.content.GetTalkBySlug(lookupCtx, slug)
	cancel()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get talk %q: %w", slug, err)
	}
	sched, err := s.GetSchedule(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range sched.Talks {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListTalks returns one page of the talks matching f, plus the number of matches.
func (s *scheduleService) ListTalks(ctx context.Context, f domain.TalkFilter, p domain.PaginationParams) ([]*domain.EnrichedTalk, int, error) {
	sched, err := s.GetSchedule(ctx)
	if err != nil {
		return nil, 0, err
	}
	matched := make([]*domain.EnrichedTalk, 0, len(sched.Talks))
	for _, t := range sched.Talks {
		if f.Match(t) {
			matched = append(matched, t)
		}
	}
	total := len(matched)
	lo, hi := p.Bounds(total)
	return matched[lo:hi], total, nil
}

func (s *scheduleService) WriteCalendar(ctx context.Context, w io.Writer) error {
	sched, err := s.GetSchedule(ctx)
	if err != nil {
		return err
	}
	cal := buildCalendar(sched, s.site, s.clock.Now())
	if err := encodeCalendar(w, cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}
