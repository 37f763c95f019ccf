package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickconf/internal/adapters/render"
	"quickconf/internal/domain"
	"quickconf/internal/schedule"
)

func newTestSiteController(t *testing.T, site *fakeSiteService, svc domain.ScheduleService) *SiteController {
	t.Helper()
	renderer, err := render.NewTemplateRenderer()
	require.NoError(t, err)
	return NewSiteController(testLogger, site, svc, renderer, schedule.ViewOptions{Clock: fakeClock()})
}

func TestSiteController_Page(t *testing.T) {
	site := &fakeSiteService{
		name: "GopherConf",
		repo: domain.RepositoryDetails{URL: "https://github.com/acme/conf", Label: "GitHub"},
	}
	ctrl := newTestSiteController(t, site, &fakeScheduleService{sched: testSchedule()})
	rr := httptest.NewRecorder()

	ctrl.Page(rr, httptest.NewRequest(http.MethodGet, "/?day=2025-06-13&lang=de", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, "GopherConf · Schedule")
	assert.Contains(t, body, "Friday, June 13, 2025")
	assert.Contains(t, body, "Hands-on")
	assert.NotContains(t, body, "Generics", "talks of other days are not rendered")
	assert.Contains(t, body, `href="/?day=2025-06-12&amp;lang=de"`)
	assert.Contains(t, body, `href="https://github.com/acme/conf"`)
	assert.NotContains(t, body, `class="now"`, "now is on another day")
}

func TestSiteController_Page_ShowsNowLine(t *testing.T) {
	ctrl := newTestSiteController(t, &fakeSiteService{repo: domain.RepositoryDetails{URL: "#"}}, &fakeScheduleService{sched: testSchedule()})
	rr := httptest.NewRecorder()

	ctrl.Page(rr, httptest.NewRequest(http.MethodGet, "/?day=2025-06-12", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `class="now" style="top: 448.00px;"`)
	assert.NotContains(t, body, "<footer>")
}

func TestSiteController_Page_Redirect(t *testing.T) {
	ctrl := newTestSiteController(t, &fakeSiteService{}, &fakeScheduleService{sched: testSchedule()})
	rr := httptest.NewRecorder()

	ctrl.Page(rr, httptest.NewRequest(http.MethodGet, "/?day=2030-01-01", nil))

	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/?day=2025-06-12", rr.Header().Get("Location"))
}

func TestSiteController_Page_ServiceError(t *testing.T) {
	ctrl := newTestSiteController(t, &fakeSiteService{}, &fakeScheduleService{err: errors.New("boom")})
	rr := httptest.NewRecorder()

	ctrl.Page(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestSiteController_HumansTxt(t *testing.T) {
	tests := []struct {
		name       string
		site       *fakeSiteService
		wantStatus int
		wantBody   string
	}{
		{"ok", &fakeSiteService{humans: "/* TEAM */"}, http.StatusOK, "/* TEAM */"},
		{"render error", &fakeSiteService{err: errors.New("bad template")}, http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := newTestSiteController(t, tt.site, &fakeScheduleService{sched: testSchedule()})
			rr := httptest.NewRecorder()

			ctrl.HumansTxt(rr, httptest.NewRequest(http.MethodGet, "/humans.txt", nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
		})
	}
}

func TestSiteController_Repository(t *testing.T) {
	want := domain.RepositoryDetails{URL: "https://gitlab.com/acme/conf", Icon: "i-simple-icons-gitlab", Label: "GitLab"}
	ctrl := newTestSiteController(t, &fakeSiteService{repo: want}, &fakeScheduleService{sched: testSchedule()})
	rr := httptest.NewRecorder()

	ctrl.Repository(rr, httptest.NewRequest(http.MethodGet, "/site/repository", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var got domain.RepositoryDetails
	decodeData(t, rr, &got)
	assert.Equal(t, want, got)
}
