package helpers

import (
	"net/http"
	"net/url"
	"sync/atomic"

	"quickconf/internal/schedule"
)

// RequestQuery is the QueryStore for a single HTTP request. A request cannot
// rewrite the client's URL in place, so a Replace is recorded and the handler
// answers with a redirect to CorrectedURL.
type RequestQuery struct {
	*schedule.MemoryQuery
	replaced atomic.Bool
}

// NewRequestQuery seeds a RequestQuery from the request's query string.
func NewRequestQuery(r *http.Request) *RequestQuery {
	return &RequestQuery{MemoryQuery: schedule.NewMemoryQuery(r.URL.Query())}
}

func (q *RequestQuery) Replace(v url.Values) {
	q.replaced.Store(true)
	q.MemoryQuery.Replace(v)
}

// Replaced reports whether the query was rewritten while handling the request.
func (q *RequestQuery) Replaced() bool {
	return q.replaced.Load()
}

// CorrectedURL returns the request URL with the current query.
func (q *RequestQuery) CorrectedURL(r *http.Request) string {
	u := *r.URL
	u.RawQuery = q.Query().Encode()
	return u.RequestURI()
}
