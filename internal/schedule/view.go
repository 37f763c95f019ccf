package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"quickconf/internal/domain"
)

// TickInterval is how often the live indicator is refreshed.
const TickInterval = time.Minute

// DemoSeedClock is the local wall time the demo clock starts at on the active day.
const DemoSeedClock = "13:20:00"

// ViewOptions configures a View.
type ViewOptions struct {
	Clock clockwork.Clock
	// DemoMode replaces the wall clock with a simulated one that starts at
	// DemoSeedClock on the active day and advances one minute per tick.
	DemoMode bool
	// OnTick is called with the refreshed indicator after activation and after
	// every tick. It runs on the ticker goroutine and must not block or call Close.
	OnTick func(domain.TimeLine)
}

// View is the live schedule view for one viewer: the URL-synced active day and
// the "now" indicator driven by a minute ticker between Activate and Close.
type View struct {
	schedule *domain.Schedule
	loc      *time.Location
	day      *ActiveDay
	opts     ViewOptions

	mu     sync.RWMutex
	now    time.Time
	hasNow bool
	cancel context.CancelFunc
	done   chan struct{}

	activateOnce sync.Once
	closeOnce    sync.Once
	stopWatch    func()
}

// NewView builds a View over s and starts correcting the day in query.
func NewView(s *domain.Schedule, query domain.QueryStore, opts ViewOptions) *View {
	if s == nil {
		s = &domain.Schedule{}
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	v := &View{
		schedule: s,
		loc:      loc,
		day:      NewActiveDay(query, s.AvailableDays, loc, opts.Clock),
		opts:     opts,
	}
	v.stopWatch = v.day.Watch()
	return v
}

// ActiveDay returns the currently active day.
func (v *View) ActiveDay() string {
	return v.day.Get()
}

// SetActiveDay selects day by rewriting the query.
func (v *View) SetActiveDay(day string) {
	v.day.Set(day)
}

// Activate sets "now" and starts the ticker. It stops when ctx is done or
// Close is called. Only the first call has an effect.
func (v *View) Activate(ctx context.Context) {
	v.activateOnce.Do(func() {
		v.refresh(true)

		ctx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		ticker := v.opts.Clock.NewTicker(TickInterval)

		v.mu.Lock()
		v.cancel = cancel
		v.done = done
		v.mu.Unlock()

		go func() {
			defer close(done)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.Chan():
					if ctx.Err() != nil {
						return
					}
					v.refresh(false)
				}
			}
		}()
	})
}

// Close stops the ticker and the query watch. It waits for the ticker goroutine,
// so no OnTick call happens after Close returns. Safe to call more than once
// and without a prior Activate.
func (v *View) Close() {
	v.closeOnce.Do(func() {
		// Block a later Activate from starting a ticker.
		v.activateOnce.Do(func() {})

		v.mu.RLock()
		cancel, done := v.cancel, v.done
		v.mu.RUnlock()
		if cancel != nil {
			cancel()
			<-done
		}
		if v.stopWatch != nil {
			v.stopWatch()
		}
	})
}

// Now returns the indicator time, false before activation.
func (v *View) Now() (time.Time, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.now, v.hasNow
}

// TimeLine returns the indicator for the active day.
func (v *View) TimeLine() domain.TimeLine {
	now, ok := v.Now()
	day := v.ActiveDay()
	r := ComputeTimeRange(TalksForDay(v.schedule.Talks, day))
	if !ok {
		return ComputeTimeLine(nil, day, r, v.loc)
	}
	return ComputeTimeLine(&now, day, r, v.loc)
}

// TalksForStage returns the active day's talks on the given stage.
func (v *View) TalksForStage(stageSlug string) []*domain.EnrichedTalk {
	return TalksForStage(TalksForDay(v.schedule.Talks, v.ActiveDay()), stageSlug)
}

// Snapshot derives the complete view model for the active day.
func (v *View) Snapshot() domain.DaySchedule {
	var now *time.Time
	if t, ok := v.Now(); ok {
		now = &t
	}
	return BuildDay(v.schedule, v.ActiveDay(), now)
}

func (v *View) refresh(initial bool) {
	v.mu.Lock()
	switch {
	case v.opts.DemoMode && initial:
		v.now = v.demoSeed()
	case v.opts.DemoMode && v.hasNow:
		v.now = v.now.Add(time.Minute)
	default:
		v.now = v.opts.Clock.Now().In(v.loc)
	}
	v.hasNow = true
	v.mu.Unlock()

	if v.opts.OnTick != nil {
		v.opts.OnTick(v.TimeLine())
	}
}

func (v *View) demoSeed() time.Time {
	day := v.day.Get()
	t, err := time.ParseInLocation(time.DateOnly+"T"+time.TimeOnly, day+"T"+DemoSeedClock, v.loc)
	if err != nil {
		return v.opts.Clock.Now().In(v.loc)
	}
	return t
}

// BuildDay derives the view model of day from s. now may be nil.
func BuildDay(s *domain.Schedule, day string, now *time.Time) domain.DaySchedule {
	talks := TalksForDay(s.Talks, day)
	r := ComputeTimeRange(talks)

	columns := make([]domain.StageColumn, 0, len(s.Stages))
	for _, st := range s.Stages {
		stageTalks := TalksForStage(talks, st.Slug)
		cards := make([]domain.TalkCard, 0, len(stageTalks))
		for _, t := range stageTalks {
			cards = append(cards, domain.TalkCard{
				Talk:  t,
				Style: TalkStyle(t, r),
				Type:  TalkTypeStyleFor(t.Type),
			})
		}
		columns = append(columns, domain.StageColumn{Stage: st, Cards: cards})
	}

	days := s.AvailableDays
	if days == nil {
		days = []string{}
	}
	types := s.TalkTypes
	if types == nil {
		types = []domain.TalkTypeOption{}
	}

	return domain.DaySchedule{
		TimeZone:      s.TimeZone,
		ActiveDay:     day,
		AvailableDays: days,
		TimeRange:     r,
		Slots:         TimeSlots(r),
		Columns:       columns,
		Talks:         talks,
		TimeLine:      ComputeTimeLine(now, day, r, s.Location),
		TalkTypes:     types,
	}
}
