package domain

import (
	"context"
	"io"
	"net/url"
	"time"
)

// EnrichedTalk is a Talk with its speaker and stage references resolved and its
// start and end localized to the conference time zone.
// swagger:model EnrichedTalk
type EnrichedTalk struct {
	Slug         string     `json:"slug"`
	Type         TalkType   `json:"type"`
	Title        string     `json:"title"`
	Speakers     []*Speaker `json:"speakers"`
	Stage        *Stage     `json:"stage"`
	Start        time.Time  `json:"start"`
	End          time.Time  `json:"end"`
	Duration     int        `json:"duration"`
	Resources    []Link     `json:"resources"`
	Abstract     string     `json:"abstract"`
	AbstractHTML string     `json:"abstract_html"`
}

// StageSlug returns the resolved stage slug, or "" when the stage is unknown.
func (t *EnrichedTalk) StageSlug() string {
	if t.Stage == nil {
		return ""
	}
	return t.Stage.Slug
}

// TimeRange is the visible span of the schedule grid in hours. End may exceed 24
// for talks running past midnight.
type TimeRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Minutes returns the total number of minutes covered by the range.
func (r TimeRange) Minutes() int {
	return (r.End - r.Start) * 60
}

// Slot is one hour row of the schedule grid.
type Slot struct {
	Hour  int    `json:"hour"`
	Label string `json:"label"`
}

// CardStyle positions a talk card inside the grid body.
type CardStyle struct {
	TopPx    float64 `json:"top_px"`
	HeightPx float64 `json:"height_px"`
	Top      string  `json:"top"`
	Height   string  `json:"height"`
}

// TimeLine is the live "now" indicator. Top is only meaningful when Visible.
type TimeLine struct {
	Visible bool       `json:"visible"`
	TopPx   float64    `json:"top_px,omitempty"`
	Top     string     `json:"top,omitempty"`
	Now     *time.Time `json:"now,omitempty"`
}

// TalkTypeStyle holds the display label and CSS classes for a talk type.
type TalkTypeStyle struct {
	Label  string `json:"label"`
	Card   string `json:"card"`
	Text   string `json:"text"`
	Legend string `json:"legend"`
}

// TalkTypeOption describes a talk type present in the schedule, for legends and filters.
type TalkTypeOption struct {
	Value TalkType `json:"value"`
	Label string   `json:"label"`
	Color string   `json:"color"`
}

// TalkCard is a talk placed on the grid.
type TalkCard struct {
	Talk  *EnrichedTalk `json:"talk"`
	Style CardStyle     `json:"style"`
	Type  TalkTypeStyle `json:"type_style"`
}

// StageColumn is one stage's column of talk cards for the active day.
type StageColumn struct {
	Stage *Stage     `json:"stage"`
	Cards []TalkCard `json:"cards"`
}

// DaySchedule is the derived view model for one active day.
// swagger:model DaySchedule
type DaySchedule struct {
	TimeZone      string           `json:"time_zone"`
	ActiveDay     string           `json:"active_day"`
	AvailableDays []string         `json:"available_days"`
	TimeRange     TimeRange        `json:"time_range"`
	Slots         []Slot           `json:"slots"`
	Columns       []StageColumn    `json:"columns"`
	Talks         []*EnrichedTalk  `json:"talks"`
	TimeLine      TimeLine         `json:"time_line"`
	TalkTypes     []TalkTypeOption `json:"talk_types"`
}

// Schedule is the fully loaded and enriched conference schedule.
type Schedule struct {
	TimeZone      string           `json:"time_zone"`
	Location      *time.Location   `json:"-"`
	Talks         []*EnrichedTalk  `json:"talks"`
	Speakers      []*Speaker       `json:"-"`
	Stages        []*Stage         `json:"stages"`
	AvailableDays []string         `json:"available_days"`
	TalkTypes     []TalkTypeOption `json:"talk_types"`
}

// QueryStore is the URL query read/write port. Replace swaps the whole query
// without adding a history entry; subscribers are called after every Replace.
type QueryStore interface {
	Query() url.Values
	Replace(q url.Values)
	Subscribe(fn func(url.Values)) (unsubscribe func())
}

// TalkFilter narrows talk listings. Zero fields match every talk.
type TalkFilter struct {
	Type  TalkType
	Day   string
	Stage string
}

// Match reports whether t passes the filter.
func (f TalkFilter) Match(t *EnrichedTalk) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Day != "" && t.Start.Format(time.DateOnly) != f.Day {
		return false
	}
	if f.Stage != "" && t.StageSlug() != f.Stage {
		return false
	}
	return true
}

// ScheduleService defines the business logic behind the schedule endpoints.
type ScheduleService interface {
	// GetSchedule loads and enriches all content. Content failures degrade to an empty schedule.
	GetSchedule(ctx context.Context) (*Schedule, error)
	GetTalk(ctx context.Context, slug string) (*EnrichedTalk, error)
	ListTalks(ctx context.Context, f TalkFilter, p PaginationParams) ([]*EnrichedTalk, int, error)
	WriteCalendar(ctx context.Context, w io.Writer) error
}
