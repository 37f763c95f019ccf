package domain

import (
	"context"
	"net/url"
	"time"
)

// TalkType is the category of a talk.
type TalkType string

// Known talk types.
const (
	TalkTypeTalk          TalkType = "talk"
	TalkTypeLightningTalk TalkType = "lightning-talk"
	TalkTypePanel         TalkType = "panel"
	TalkTypeKeynote       TalkType = "keynote"
	TalkTypeWorkshop      TalkType = "workshop"
	TalkTypeOther         TalkType = "other"
)

// DefaultTalkDuration is applied when a talk does not state its duration.
const DefaultTalkDuration = 30

// Valid reports whether t is one of the known talk types.
func (t TalkType) Valid() bool {
	switch t {
	case TalkTypeTalk, TalkTypeLightningTalk, TalkTypePanel, TalkTypeKeynote, TalkTypeWorkshop, TalkTypeOther:
		return true
	}
	return false
}

// Link is an external link attached to a talk or speaker.
type Link struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description"`
	Icon        string `json:"icon,omitempty" yaml:"icon"`
}

// Talk is a scheduled talk as stored in the content files.
// swagger:model Talk
type Talk struct {
	Slug      string    `json:"slug"`
	Type      TalkType  `json:"type"`
	Title     string    `json:"title"`
	Speakers  []string  `json:"speakers"`
	DateTime  time.Time `json:"date_time"`
	Duration  int       `json:"duration"`
	Stage     string    `json:"stage"`
	Resources []Link    `json:"resources"`
	// Abstract is the markdown body of the talk file, AbstractHTML its rendering.
	Abstract     string `json:"abstract"`
	AbstractHTML string `json:"abstract_html"`
	SourcePath   string `json:"-"`
}

// Validate implements the content schema. Returns error messages; empty means valid.
func (t *Talk) Validate() []string {
	var errs []string
	if t.Slug == "" {
		errs = append(errs, "slug is required")
	}
	if !t.Type.Valid() {
		errs = append(errs, "type must be one of talk, lightning-talk, panel, keynote, workshop, other")
	}
	if t.Title == "" {
		errs = append(errs, "title is required")
	}
	if t.DateTime.IsZero() {
		errs = append(errs, "dateTime is required")
	}
	if t.Duration < 1 {
		errs = append(errs, "duration must be at least 1 minute")
	}
	if t.Stage == "" {
		errs = append(errs, "stage is required")
	}
	errs = append(errs, validateLinks("resources", t.Resources)...)
	return errs
}

func validateLinks(field string, links []Link) []string {
	var errs []string
	for _, l := range links {
		u, err := url.Parse(l.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, field+": invalid url "+l.URL)
		}
	}
	return errs
}

// Speaker is a conference speaker.
// swagger:model Speaker
type Speaker struct {
	Slug          string `json:"slug"`
	Featured      bool   `json:"featured"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	Company       string `json:"company,omitempty"`
	SocialMedia   []Link `json:"social_media"`
	Biography     string `json:"biography"`
	BiographyHTML string `json:"biography_html"`
	SourcePath    string `json:"-"`
}

// Validate implements the content schema.
func (s *Speaker) Validate() []string {
	var errs []string
	if s.Slug == "" {
		errs = append(errs, "slug is required")
	}
	if s.Name == "" {
		errs = append(errs, "name is required")
	}
	if s.Image == "" {
		errs = append(errs, "image is required")
	}
	errs = append(errs, validateLinks("socialMedia", s.SocialMedia)...)
	return errs
}

// Stage is a room or track where talks take place.
// swagger:model Stage
type Stage struct {
	Slug       string `json:"slug" yaml:"slug"`
	Name       string `json:"name" yaml:"name"`
	Place      string `json:"place,omitempty" yaml:"place"`
	SourcePath string `json:"-" yaml:"-"`
}

// Validate implements the content schema.
func (s *Stage) Validate() []string {
	var errs []string
	if s.Slug == "" {
		errs = append(errs, "slug is required")
	}
	if s.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// ContentRepository is the content query port over the static content collections.
type ContentRepository interface {
	// ListTalks returns all talks ordered by DateTime ascending.
	ListTalks(ctx context.Context) ([]*Talk, error)
	ListSpeakers(ctx context.Context) ([]*Speaker, error)
	ListStages(ctx context.Context) ([]*Stage, error)
	// GetTalkBySlug returns ErrNotFound when no talk has the slug.
	GetTalkBySlug(ctx context.Context, slug string) (*Talk, error)
}
