package schedule

import (
	"maps"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"quickconf/internal/domain"
)

// DayQueryParam is the query parameter that carries the active day.
const DayQueryParam = "day"

// ActiveDay binds the active schedule day to the "day" query parameter.
type ActiveDay struct {
	query domain.QueryStore
	days  []string
	loc   *time.Location
	clock clockwork.Clock
}

// NewActiveDay returns a binding over query for the given sorted available days.
func NewActiveDay(query domain.QueryStore, days []string, loc *time.Location, clock clockwork.Clock) *ActiveDay {
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ActiveDay{query: query, days: days, loc: loc, clock: clock}
}

// Get returns the query day when it is available, else the first available day,
// else today in the configured zone.
func (a *ActiveDay) Get() string {
	q := a.query.Query().Get(DayQueryParam)
	if slices.Contains(a.days, q) {
		return q
	}
	if len(a.days) > 0 {
		return a.days[0]
	}
	return ISODate(a.clock.Now().In(a.loc))
}

// Set replaces the query with day as the active day, keeping all other keys.
func (a *ActiveDay) Set(day string) {
	q := cloneValues(a.query.Query())
	q.Set(DayQueryParam, day)
	a.query.Replace(q)
}

// Watch corrects the query immediately and after every change: an absent or
// unavailable day is rewritten to the first available day. With no days
// available the query is left alone. The returned func stops watching.
func (a *ActiveDay) Watch() (stop func()) {
	a.correct(a.query.Query())
	return a.query.Subscribe(a.correct)
}

func (a *ActiveDay) correct(q url.Values) {
	if len(a.days) == 0 {
		return
	}
	if d := q.Get(DayQueryParam); d == "" || !slices.Contains(a.days, d) {
		a.Set(a.days[0])
	}
}

// MemoryQuery is an in-process QueryStore.
type MemoryQuery struct {
	mu     sync.Mutex
	values url.Values
	subs   map[int]func(url.Values)
	nextID int
}

// NewMemoryQuery returns a MemoryQuery seeded with a copy of q.
func NewMemoryQuery(q url.Values) *MemoryQuery {
	return &MemoryQuery{values: cloneValues(q), subs: make(map[int]func(url.Values))}
}

// Query returns a copy of the current query.
func (m *MemoryQuery) Query() url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneValues(m.values)
}

// Replace swaps the query and notifies subscribers outside the lock.
func (m *MemoryQuery) Replace(q url.Values) {
	m.mu.Lock()
	m.values = cloneValues(q)
	ids := slices.Sorted(maps.Keys(m.subs))
	subs := make([]func(url.Values), 0, len(ids))
	for _, id := range ids {
		subs = append(subs, m.subs[id])
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(cloneValues(q))
	}
}

// Subscribe registers fn for query changes.
func (m *MemoryQuery) Subscribe(fn func(url.Values)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

func cloneValues(q url.Values) url.Values {
	out := make(url.Values, len(q)+1)
	for k, v := range q {
		out[k] = slices.Clone(v)
	}
	return out
}
