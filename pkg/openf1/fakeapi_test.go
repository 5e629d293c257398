package openf1

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
)

// fakeAPI serves canned OpenF1 responses keyed by "endpoint?rawquery", falling
// back to "endpoint" alone.
type fakeAPI struct {
	mu       sync.Mutex
	bodies   map[string]string
	statuses map[string]int
	requests []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		bodies:   map[string]string{},
		statuses: map[string]int{},
	}
}

func (f *fakeAPI) respond(key, body string) *fakeAPI {
	f.bodies[key] = body
	return f
}

func (f *fakeAPI) fail(key string, status int) *fakeAPI {
	f.statuses[key] = status
	return f
}

func (f *fakeAPI) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	endpoint := mux.Vars(r)["endpoint"]
	key := endpoint
	if r.URL.RawQuery != "" {
		key += "?" + r.URL.RawQuery
	}

	f.mu.Lock()
	f.requests = append(f.requests, key)
	f.mu.Unlock()

	for _, k := range []string{key, endpoint} {
		if status, ok := f.statuses[k]; ok {
			w.WriteHeader(status)
			return
		}
		if body, ok := f.bodies[k]; ok {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
			return
		}
	}
	http.NotFound(w, r)
}

// newTestClient starts the fake API and returns a client pointed at it whose
// clock is fixed in 2024.
func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/v1/{endpoint}", api.handle).Methods(http.MethodGet)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	c := NewClient(server.URL+"/v1/", t.TempDir())
	c.now = func() time.Time {
		return time.Date(2024, time.August, 1, 12, 0, 0, 0, time.UTC)
	}
	return c
}
