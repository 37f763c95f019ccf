package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"quickconf/internal/delivery/http/helpers"
	"quickconf/internal/domain"
)

// ListTalksQuery holds the optional filters of GET /talks.
type ListTalksQuery struct {
	Type  string
	Day   string
	Stage string
}

// Validate implements Validator.
func (q ListTalksQuery) Validate() []string {
	var errs []string
	if q.Type != "" && !domain.TalkType(q.Type).Valid() {
		errs = append(errs, "type must be one of talk, lightning-talk, panel, keynote, workshop, other")
	}
	if q.Day != "" {
		if _, err := time.Parse(time.DateOnly, q.Day); err != nil {
			errs = append(errs, "day must be a date in YYYY-MM-DD format")
		}
	}
	return errs
}

// ListTalksResponse is the response body for GET /talks.
type ListTalksResponse struct {
	Items      []*domain.EnrichedTalk `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListTalksSuccessResponse is the success response envelope for GET /talks (200).
type ListTalksSuccessResponse struct {
	Data  ListTalksResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetTalkSuccessResponse is the success response envelope for GET /talks/{slug} (200).
type GetTalkSuccessResponse struct {
	Data  *domain.EnrichedTalk `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type TalkController struct {
	Logger  *slog.Logger
	Service domain.ScheduleService
}

func NewTalkController(logger *slog.Logger, svc domain.ScheduleService) *TalkController {
	return &TalkController{
		Logger:  logger,
		Service: svc,
	}
}

// ListTalks godoc
// @Summary List talks
// @Description Returns a paginated list of enriched talks ordered by start time. Optional filters narrow by talk type, local day and stage.
// @Tags talks
// @Produce json
// @Param type query string false "Talk type" Enums(talk, lightning-talk, panel, keynote, workshop, other)
// @Param day query string false "Local day (YYYY-MM-DD)"
// @Param stage query string false "Stage slug"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListTalksSuccessResponse "data contains items and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /talks [get]
func (c *TalkController) ListTalks(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	query := ListTalksQuery{
		Type:  strings.TrimSpace(values.Get("type")),
		Day:   strings.TrimSpace(values.Get("day")),
		Stage: strings.TrimSpace(values.Get("stage")),
	}
	if !helpers.ValidateRequest(w, query) {
		return
	}
	params := helpers.ParsePagination(values)
	filter := domain.TalkFilter{Type: domain.TalkType(query.Type), Day: query.Day, Stage: query.Stage}
	list, total, err := c.Service.ListTalks(r.Context(), filter, params)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	if list == nil {
		list = []*domain.EnrichedTalk{}
	}
	meta := helpers.NewPaginationMeta(params, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListTalksResponse{Items: list, Pagination: meta})
}

// GetTalk godoc
// @Summary Get a talk by slug
// @Description Returns the talk with its speakers and stage resolved and its times localized to the conference time zone.
// @Tags talks
// @Produce json
// @Param slug path string true "Talk slug"
// @Success 200 {object} controllers.GetTalkSuccessResponse "data contains the talk"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /talks/{slug} [get]
func (c *TalkController) GetTalk(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	talk, err := c.Service.GetTalk(r.Context(), slug)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "talk not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, talk)
}
