package domain

import (
	"context"
	"io"
)

// TemplateRenderer renders named templates (infrastructure port).
type TemplateRenderer interface {
	RenderHTML(w io.Writer, name string, data any) error
	RenderText(w io.Writer, name string, data any) error
}

// RepositoryDetails describes the repository hosting the site content.
type RepositoryDetails struct {
	URL   string `json:"url"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// HumansData is the data behind humans.txt.
type HumansData struct {
	TemplateName    string
	TemplateVersion string
	ConferenceName  string
	BaseURL         string
	RepositoryURL   string
}

// SiteService serves site-wide documents derived from the site configuration.
type SiteService interface {
	ConferenceName() string
	Repository() RepositoryDetails
	HumansTxt(ctx context.Context) (string, error)
}
