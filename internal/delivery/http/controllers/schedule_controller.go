package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"quickconf/internal/delivery/http/helpers"
	"quickconf/internal/domain"
	"quickconf/internal/schedule"
)

// DayScheduleSuccessResponse is the success response envelope for GET /schedule (200).
type DayScheduleSuccessResponse struct {
	Data  domain.DaySchedule `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// DaysResponse is the response body for GET /schedule/days.
type DaysResponse struct {
	TimeZone  string                  `json:"time_zone"`
	Days      []string                `json:"days"`
	TalkTypes []domain.TalkTypeOption `json:"talk_types"`
}

// DaysSuccessResponse is the success response envelope for GET /schedule/days (200).
type DaysSuccessResponse struct {
	Data  DaysResponse      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// StageTalksResponse is the response body for GET /schedule/stages/{stageSlug}.
type StageTalksResponse struct {
	ActiveDay string                 `json:"active_day"`
	Stage     *domain.Stage          `json:"stage"`
	Talks     []*domain.EnrichedTalk `json:"talks"`
}

// StageTalksSuccessResponse is the success response envelope for GET /schedule/stages/{stageSlug} (200).
type StageTalksSuccessResponse struct {
	Data  StageTalksResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// NowResponse is the response body for GET /schedule/now and the payload of each stream event.
type NowResponse struct {
	ActiveDay string          `json:"active_day"`
	TimeLine  domain.TimeLine `json:"time_line"`
}

// NowSuccessResponse is the success response envelope for GET /schedule/now (200).
type NowSuccessResponse struct {
	Data  NowResponse       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// timeLineEvent is the SSE event name used by StreamNow.
const timeLineEvent = "timeline"

type ScheduleController struct {
	Logger  *slog.Logger
	Service domain.ScheduleService
	// Views holds the clock and demo mode used for every view opened by a request.
	Views schedule.ViewOptions
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService, views schedule.ViewOptions) *ScheduleController {
	views.OnTick = nil
	return &ScheduleController{
		Logger:  logger,
		Service: svc,
		Views:   views,
	}
}

// GetDay godoc
// @Summary Get the schedule of one day
// @Description Returns the grid view model of the active day: time range, hour slots, stage columns with positioned talk cards, the "now" indicator and the talk types. An absent or unknown day redirects to the same URL with the first available day.
// @Tags schedule
// @Produce json
// @Param day query string false "Active day (YYYY-MM-DD)"
// @Success 200 {object} controllers.DayScheduleSuccessResponse "data contains the day schedule"
// @Success 302 "redirect to the corrected day"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedule [get]
func (c *ScheduleController) GetDay(w http.ResponseWriter, r *http.Request) {
	_, v, err := openView(w, r, c.Service, c.Views)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	if v == nil {
		return
	}
	defer v.Close()
	v.Activate(r.Context())
	helpers.WriteJSONSuccess(w, http.StatusOK, v.Snapshot())
}

// GetDays godoc
// @Summary List the conference days
// @Description Returns the distinct local dates that have talks, in ascending order, and the talk types present.
// @Tags schedule
// @Produce json
// @Success 200 {object} controllers.DaysSuccessResponse "data contains days and talk types"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedule/days [get]
func (c *ScheduleController) GetDays(w http.ResponseWriter, r *http.Request) {
	sched, err := c.Service.GetSchedule(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	days := sched.AvailableDays
	if days == nil {
		days = []string{}
	}
	types := sched.TalkTypes
	if types == nil {
		types = []domain.TalkTypeOption{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DaysResponse{TimeZone: sched.TimeZone, Days: days, TalkTypes: types})
}

// GetStageTalks godoc
// @Summary List the talks of one stage on the active day
// @Tags schedule
// @Produce json
// @Param stageSlug path string true "Stage slug"
// @Param day query string false "Active day (YYYY-MM-DD)"
// @Success 200 {object} controllers.StageTalksSuccessResponse "data contains the stage and its talks"
// @Success 302 "redirect to the corrected day"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedule/stages/{stageSlug} [get]
func (c *ScheduleController) GetStageTalks(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("stageSlug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing stageSlug")
		return
	}
	sched, v, err := openView(w, r, c.Service, c.Views)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	if v == nil {
		return
	}
	defer v.Close()
	i := slices.IndexFunc(sched.Stages, func(s *domain.Stage) bool { return s.Slug == slug })
	if i < 0 {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "stage not found")
		return
	}
	talks := v.TalksForStage(slug)
	if talks == nil {
		talks = []*domain.EnrichedTalk{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StageTalksResponse{ActiveDay: v.ActiveDay(), Stage: sched.Stages[i], Talks: talks})
}

// GetNow godoc
// @Summary Get the "now" indicator
// @Description Returns the time line of the active day at request time. It is hidden when now falls outside the visible grid or on another day. In demo mode now is 13:20 on the active day.
// @Tags schedule
// @Produce json
// @Param day query string false "Active day (YYYY-MM-DD)"
// @Success 200 {object} controllers.NowSuccessResponse "data contains the time line"
// @Success 302 "redirect to the corrected day"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedule/now [get]
func (c *ScheduleController) GetNow(w http.ResponseWriter, r *http.Request) {
	_, v, err := openView(w, r, c.Service, c.Views)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	if v == nil {
		return
	}
	defer v.Close()
	v.Activate(r.Context())
	helpers.WriteJSONSuccess(w, http.StatusOK, NowResponse{ActiveDay: v.ActiveDay(), TimeLine: v.TimeLine()})
}

// StreamNow godoc
// @Summary Stream the "now" indicator
// @Description Server-Sent Events stream of the active day's time line. One "timeline" event is sent on connect and one per minute after that until the client disconnects.
// @Tags schedule
// @Produce text/event-stream
// @Param day query string false "Active day (YYYY-MM-DD)"
// @Success 200 {object} controllers.NowResponse "each event's data"
// @Success 302 "redirect to the corrected day"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedule/now/stream [get]
func (c *ScheduleController) StreamNow(w http.ResponseWriter, r *http.Request) {
	// Holds at most the latest indicator; a slow client skips stale ticks.
	ticks := make(chan domain.TimeLine, 1)
	opts := c.Views
	opts.OnTick = func(tl domain.TimeLine) {
		select {
		case <-ticks:
		default:
		}
		ticks <- tl
	}

	_, v, err := openView(w, r, c.Service, opts)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	if v == nil {
		return
	}
	defer v.Close()

	rc := http.NewResponseController(w)
	// Streams outlive the server write timeout.
	_ = rc.SetWriteDeadline(time.Time{})
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ctx := r.Context()
	v.Activate(ctx)
	day := v.ActiveDay()
	for {
		select {
		case <-ctx.Done():
			return
		case tl := <-ticks:
			if err := writeEvent(w, timeLineEvent, NowResponse{ActiveDay: day, TimeLine: tl}); err != nil {
				c.Logger.DebugContext(ctx, "stream closed", "path", r.URL.Path, "err", err)
				return
			}
			if err := rc.Flush(); err != nil {
				c.Logger.DebugContext(ctx, "stream closed", "path", r.URL.Path, "err", err)
				return
			}
		}
	}
}

func writeEvent(w http.ResponseWriter, event string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, b)
	return err
}

// Calendar godoc
// @Summary Export the schedule as iCalendar
// @Description Returns every talk as a VEVENT. Event UIDs are derived from the site URL and talk slug, so they are stable across exports.
// @Tags schedule
// @Produce text/calendar
// @Success 200 {string} string "iCalendar document"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedule.ics [get]
func (c *ScheduleController) Calendar(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := c.Service.WriteCalendar(r.Context(), &buf); err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="schedule.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
