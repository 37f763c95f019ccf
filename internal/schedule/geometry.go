package schedule

import (
	"fmt"
	"strconv"
	"time"

	"quickconf/internal/domain"
)

// Grid geometry in pixels.
const (
	HeaderHeight = 48
	HourHeight   = 160
)

// TalkStyle positions a talk card relative to the grid body.
func TalkStyle(t *domain.EnrichedTalk, r domain.TimeRange) domain.CardStyle {
	offset := (t.Start.Hour()-r.Start)*60 + t.Start.Minute()
	top := float64(offset) / 60 * HourHeight
	height := float64(t.Duration) / 60 * HourHeight
	return domain.CardStyle{
		TopPx:    top,
		HeightPx: height,
		Top:      px(top),
		Height:   px(height),
	}
}

// ComputeTimeLine positions the "now" indicator relative to the grid including
// its header. It is hidden when now is nil, when now falls on another day than
// activeDay, or when it lies outside the visible range.
func ComputeTimeLine(now *time.Time, activeDay string, r domain.TimeRange, loc *time.Location) domain.TimeLine {
	if now == nil {
		return domain.TimeLine{}
	}
	local := *now
	if loc != nil {
		local = local.In(loc)
	}
	if ISODate(local) != activeDay {
		return domain.TimeLine{}
	}

	fromStart := (local.Hour()-r.Start)*60 + local.Minute()
	if fromStart < 0 || fromStart > r.Minutes() {
		return domain.TimeLine{}
	}

	top := HeaderHeight + float64(fromStart)/60*HourHeight
	return domain.TimeLine{
		Visible: true,
		TopPx:   top,
		Top:     fmt.Sprintf("%.2fpx", top),
		Now:     &local,
	}
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
