package services

import (
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"quickconf/config"
	"quickconf/internal/domain"
	"quickconf/internal/schedule"
)

const calendarProductID = "-//quickconf//schedule//EN"

// talkUID derives a stable event UID from the site URL and talk slug.
func talkUID(site *config.SiteConfig, slug string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(talkURL(site, slug))).String()
}

func talkURL(site *config.SiteConfig, slug string) string {
	base := strings.TrimSuffix(site.General.SiteURL, "/")
	return base + "/talks/" + slug
}

func buildCalendar(sched *domain.Schedule, site *config.SiteConfig, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, calendarProductID)
	if site.General.ConferenceName != "" {
		setExtension(cal.Props, "X-WR-CALNAME", site.General.ConferenceName)
	}
	setExtension(cal.Props, "X-WR-TIMEZONE", sched.TimeZone)

	for _, t := range sched.Talks {
		ev := ical.NewEvent()
		ev.Props.SetText(ical.PropUID, talkUID(site, t.Slug))
		ev.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
		ev.Props.SetDateTime(ical.PropDateTimeStart, t.Start.UTC())
		ev.Props.SetDateTime(ical.PropDateTimeEnd, t.End.UTC())
		ev.Props.SetText(ical.PropSummary, t.Title)
		ev.Props.SetText(ical.PropCategories, schedule.TalkTypeStyleFor(t.Type).Label)
		if desc := talkDescription(t); desc != "" {
			ev.Props.SetText(ical.PropDescription, desc)
		}
		if loc := stageLocation(t.Stage); loc != "" {
			ev.Props.SetText(ical.PropLocation, loc)
		}
		if site.General.SiteURL != "" {
			if u, err := url.Parse(talkURL(site, t.Slug)); err == nil {
				ev.Props.SetURI(ical.PropURL, u)
			}
		}
		cal.Children = append(cal.Children, ev.Component)
	}
	return cal
}

// setExtension writes a non-standard property without a VALUE parameter.
func setExtension(props ical.Props, name, value string) {
	p := ical.NewProp(name)
	p.Value = value
	props.Set(p)
}

func talkDescription(t *domain.EnrichedTalk) string {
	var parts []string
	if len(t.Speakers) > 0 {
		names := make([]string, 0, len(t.Speakers))
		for _, sp := range t.Speakers {
			names = append(names, sp.Name)
		}
		parts = append(parts, "Speakers: "+strings.Join(names, ", "))
	}
	if t.Abstract != "" {
		parts = append(parts, t.Abstract)
	}
	return strings.Join(parts, "\n\n")
}

func stageLocation(st *domain.Stage) string {
	if st == nil {
		return ""
	}
	if st.Place != "" {
		return st.Name + ", " + st.Place
	}
	return st.Name
}

func encodeCalendar(w io.Writer, cal *ical.Calendar) error {
	return ical.NewEncoder(w).Encode(cal)
}
