package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"quickconf/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(scheduleController *controllers.ScheduleController, talkController *controllers.TalkController, siteController *controllers.SiteController) *http.ServeMux {
	mux := http.NewServeMux()

	// Schedule
	mux.HandleFunc("GET /schedule", scheduleController.GetDay)
	mux.HandleFunc("GET /schedule/days", scheduleController.GetDays)
	mux.HandleFunc("GET /schedule/stages/{stageSlug}", scheduleController.GetStageTalks)
	mux.HandleFunc("GET /schedule/now", scheduleController.GetNow)
	mux.HandleFunc("GET /schedule/now/stream", scheduleController.StreamNow)
	mux.HandleFunc("GET /schedule.ics", scheduleController.Calendar)

	// Talks
	mux.HandleFunc("GET /talks", talkController.ListTalks)
	mux.HandleFunc("GET /talks/{slug}", talkController.GetTalk)

	// Site
	mux.HandleFunc("GET /{$}", siteController.Page)
	mux.HandleFunc("GET /humans.txt", siteController.HumansTxt)
	mux.HandleFunc("GET /site/repository", siteController.Repository)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
