package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"quickconf/config"
	"quickconf/internal/domain"
)

// Template identity written to humans.txt.
const (
	TemplateName    = "quickconf"
	TemplateVersion = "1.0.0"
)

const unknown = "(unknown)"

type siteService struct {
	site     *config.SiteConfig
	renderer domain.TemplateRenderer
	logger   *slog.Logger
}

// NewSiteService returns a SiteService for the given site configuration.
func NewSiteService(site *config.SiteConfig, renderer domain.TemplateRenderer, logger *slog.Logger) domain.SiteService {
	if site == nil {
		site = &config.SiteConfig{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &siteService{site: site, renderer: renderer, logger: logger}
}

func (s *siteService) ConferenceName() string {
	return s.site.General.ConferenceName
}

// Repository resolves the content repository link. Supports GitHub and GitLab;
// anything else yields "#" and a warning.
func (s *siteService) Repository() domain.RepositoryDetails {
	repo := s.site.NuxtStudio.Repository
	out := domain.RepositoryDetails{URL: "#"}
	if repo.Provider == "" || repo.Owner == "" || repo.Repo == "" {
		s.logger.Warn("invalid repository config: provider, owner or repo is missing")
		return out
	}
	switch repo.Provider {
	case "github":
		out = domain.RepositoryDetails{
			URL:   fmt.Sprintf("https://github.com/%s/%s", repo.Owner, repo.Repo),
			Icon:  "i-simple-icons-github",
			Label: "GitHub",
		}
	case "gitlab":
		out = domain.RepositoryDetails{
			URL:   fmt.Sprintf("https://gitlab.com/%s/%s", repo.Owner, repo.Repo),
			Icon:  "i-simple-icons-gitlab",
			Label: "GitLab",
		}
	default:
		s.logger.Warn("unsupported repository provider", "provider", repo.Provider, "owner", repo.Owner, "repo", repo.Repo)
	}
	return out
}

func (s *siteService) HumansTxt(ctx context.Context) (string, error) {
	data := domain.HumansData{
		TemplateName:    TemplateName,
		TemplateVersion: TemplateVersion,
		ConferenceName:  orUnknown(s.site.General.ConferenceName),
		BaseURL:         orUnknown(strings.TrimSuffix(s.site.General.SiteURL, "/")),
		RepositoryURL:   unknown,
	}
	if r := s.site.NuxtStudio.Repository; r.Owner != "" || r.Repo != "" {
		data.RepositoryURL = s.Repository().URL
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderText(&buf, "humans.txt", data); err != nil {
		return "", fmt.Errorf("render humans.txt: %w", err)
	}
	return buf.String(), nil
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
