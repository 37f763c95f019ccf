package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"quickconf/internal/delivery/http/helpers"
	"quickconf/internal/domain"
	"quickconf/internal/schedule"
)

// openView loads the schedule and binds a View to the request query. When the
// active day had to be corrected it answers with a redirect to the corrected
// URL and returns a nil View. The caller must Close a returned View.
func openView(w http.ResponseWriter, r *http.Request, svc domain.ScheduleService, opts schedule.ViewOptions) (*domain.Schedule, *schedule.View, error) {
	sched, err := svc.GetSchedule(r.Context())
	if err != nil {
		return nil, nil, err
	}
	q := helpers.NewRequestQuery(r)
	v := schedule.NewView(sched, q, opts)
	if q.Replaced() {
		v.Close()
		http.Redirect(w, r, q.CorrectedURL(r), http.StatusFound)
		return sched, nil, nil
	}
	return sched, v, nil
}

// writeServiceError maps service errors to the JSON envelope.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, notFound string) {
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFound)
		return
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}
