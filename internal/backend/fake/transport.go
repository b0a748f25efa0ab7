package fake

import (
	"net/http"
	"net/http/httptest"
)

// inProcessTransport serves requests directly against the fake backend
// without opening a listener
type inProcessTransport struct {
	handler http.Handler
}

// RoundTrip implements http.RoundTripper
func (t inProcessTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := httptest.NewRecorder()
	t.handler.ServeHTTP(rec, req)
	resp := rec.Result()
	resp.Request = req
	return resp, nil
}

// HTTPClient returns a client whose requests are served in process by
// this fake backend
func (s *Server) HTTPClient() *http.Client {
	return &http.Client{Transport: inProcessTransport{handler: s}}
}
