package controllers

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"

	"quickconf/internal/delivery/http/helpers"
	"quickconf/internal/domain"
	"quickconf/internal/schedule"
)

// DayLink is one entry of the day navigation on the schedule page.
type DayLink struct {
	ISO    string
	URL    string
	Active bool
}

// SchedulePage is the data behind the schedule.html template.
type SchedulePage struct {
	ConferenceName string
	Repository     domain.RepositoryDetails
	Day            domain.DaySchedule
	Days           []DayLink
}

// RepositorySuccessResponse is the success response envelope for GET /site/repository (200).
type RepositorySuccessResponse struct {
	Data  domain.RepositoryDetails `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// SiteController serves the HTML schedule page and site documents.
type SiteController struct {
	Logger   *slog.Logger
	Site     domain.SiteService
	Schedule domain.ScheduleService
	Renderer domain.TemplateRenderer
	Views    schedule.ViewOptions
}

func NewSiteController(logger *slog.Logger, site domain.SiteService, sched domain.ScheduleService, renderer domain.TemplateRenderer, views schedule.ViewOptions) *SiteController {
	views.OnTick = nil
	return &SiteController{
		Logger:   logger,
		Site:     site,
		Schedule: sched,
		Renderer: renderer,
		Views:    views,
	}
}

// Page renders the schedule grid of the active day as HTML.
// An absent or unknown day redirects to the corrected URL.
func (c *SiteController) Page(w http.ResponseWriter, r *http.Request) {
	sched, v, err := openView(w, r, c.Schedule, c.Views)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if v == nil {
		return
	}
	defer v.Close()
	v.Activate(r.Context())

	active := v.ActiveDay()
	page := SchedulePage{
		ConferenceName: c.Site.ConferenceName(),
		Repository:     c.Site.Repository(),
		Day:            v.Snapshot(),
		Days:           make([]DayLink, 0, len(sched.AvailableDays)),
	}
	for _, d := range sched.AvailableDays {
		q := r.URL.Query()
		q.Set(schedule.DayQueryParam, d)
		u := url.URL{Path: r.URL.Path, RawQuery: q.Encode()}
		page.Days = append(page.Days, DayLink{ISO: d, URL: u.String(), Active: d == active})
	}

	var buf bytes.Buffer
	if err := c.Renderer.RenderHTML(&buf, "schedule.html", page); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// HumansTxt godoc
// @Summary humans.txt
// @Description Plain-text credits file built from the site configuration.
// @Tags site
// @Produce plain
// @Success 200 {string} string "humans.txt"
// @Failure 500 {string} string "internal error"
// @Router /humans.txt [get]
func (c *SiteController) HumansTxt(w http.ResponseWriter, r *http.Request) {
	body, err := c.Site.HumansTxt(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(body))
}

// Repository godoc
// @Summary Get the content repository link
// @Description Resolves the configured content repository to a browsable URL. Unsupported or incomplete configuration yields "#".
// @Tags site
// @Produce json
// @Success 200 {object} controllers.RepositorySuccessResponse "data contains url, icon and label"
// @Router /site/repository [get]
func (c *SiteController) Repository(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Site.Repository())
}
