package files

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"quickconf/internal/domain"
)

var yamlFrontmatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

type talkFrontmatter struct {
	Slug      string        `yaml:"slug"`
	Type      string        `yaml:"type"`
	Title     string        `yaml:"title"`
	Speakers  []string      `yaml:"speakers"`
	DateTime  string        `yaml:"dateTime"`
	Duration  *int          `yaml:"duration"`
	Stage     string        `yaml:"stage"`
	Resources []domain.Link `yaml:"resources"`
}

type speakerFrontmatter struct {
	Slug        string        `yaml:"slug"`
	Featured    bool          `yaml:"featured"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Image       string        `yaml:"image"`
	Company     string        `yaml:"company"`
	SocialMedia []domain.Link `yaml:"socialMedia"`
}

// dateTimeLayouts are tried in order; layouts without a zone are read as UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateTime,
	time.DateOnly,
}

func parseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized dateTime %q", s)
}

func (r *ContentRepository) parseTalk(path string, raw []byte) (*domain.Talk, error) {
	var fm talkFrontmatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm, yamlFrontmatter)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	t := &domain.Talk{
		Slug:       fm.Slug,
		Type:       domain.TalkType(fm.Type),
		Title:      fm.Title,
		Speakers:   fm.Speakers,
		Duration:   domain.DefaultTalkDuration,
		Stage:      fm.Stage,
		Resources:  fm.Resources,
		Abstract:   strings.TrimSpace(string(body)),
		SourcePath: path,
	}
	if t.Speakers == nil {
		t.Speakers = []string{}
	}
	if t.Resources == nil {
		t.Resources = []domain.Link{}
	}
	if fm.Duration != nil {
		t.Duration = *fm.Duration
	}
	var errs []string
	if fm.DateTime != "" {
		dt, err := parseDateTime(fm.DateTime)
		if err != nil {
			errs = append(errs, err.Error())
		}
		t.DateTime = dt
	}
	errs = append(errs, t.Validate()...)
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidContent, strings.Join(errs, "; "))
	}

	html, err := r.renderMarkdown(body)
	if err != nil {
		return nil, err
	}
	t.AbstractHTML = html
	return t, nil
}

func (r *ContentRepository) parseSpeaker(path string, raw []byte) (*domain.Speaker, error) {
	var fm speakerFrontmatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm, yamlFrontmatter)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	s := &domain.Speaker{
		Slug:        fm.Slug,
		Featured:    fm.Featured,
		Name:        fm.Name,
		Description: fm.Description,
		Image:       fm.Image,
		Company:     fm.Company,
		SocialMedia: fm.SocialMedia,
		Biography:   strings.TrimSpace(string(body)),
		SourcePath:  path,
	}
	if s.SocialMedia == nil {
		s.SocialMedia = []domain.Link{}
	}
	if errs := s.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidContent, strings.Join(errs, "; "))
	}

	html, err := r.renderMarkdown(body)
	if err != nil {
		return nil, err
	}
	s.BiographyHTML = html
	return s, nil
}

func parseStage(path string, raw []byte) (*domain.Stage, error) {
	s := &domain.Stage{}
	if err := yaml.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	s.SourcePath = path
	if errs := s.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidContent, strings.Join(errs, "; "))
	}
	return s, nil
}

func (r *ContentRepository) renderMarkdown(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
