package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"thinkboard/internal/api"
	"thinkboard/internal/config"
	"thinkboard/internal/notes"
)

type backendCall struct {
	Method string
	Path   string
	Body   string
}

// fakeBackend is an in-memory notes REST resource.
type fakeBackend struct {
	mu     sync.Mutex
	order  []string
	byID   map[string]notes.Note
	calls  []backendCall
	status int
	nextID int

	// hold, when set, parks write requests until it is closed.
	hold    chan struct{}
	entered chan struct{}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{byID: make(map[string]notes.Note)}
}

func (b *fakeBackend) seed(list ...notes.Note) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, n := range list {
		b.order = append(b.order, n.ID)
		b.byID[n.ID] = n
	}
}

// failWith makes every following request answer with status.
func (b *fakeBackend) failWith(status int) {
	b.mu.Lock()
	b.status = status
	b.mu.Unlock()
}

// holdWrites parks write requests until release is called. entered
// receives once per parked request.
func (b *fakeBackend) holdWrites() (entered <-chan struct{}, release func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hold = make(chan struct{})
	b.entered = make(chan struct{}, 8)
	hold := b.hold
	var once sync.Once
	return b.entered, func() { once.Do(func() { close(hold) }) }
}

func (b *fakeBackend) Calls() []backendCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]backendCall(nil), b.calls...)
}

func (b *fakeBackend) callsWithMethod(method string) []backendCall {
	var out []backendCall
	for _, c := range b.Calls() {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	b.mu.Lock()
	hold, entered := b.hold, b.entered
	b.mu.Unlock()
	if hold != nil && r.Method != http.MethodGet {
		entered <- struct{}{}
		<-hold
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, backendCall{Method: r.Method, Path: r.URL.Path, Body: string(body)})

	if b.status != 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(b.status)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": http.StatusText(b.status)})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/notes/")
	switch {
	case r.URL.Path == "/api/notes" && r.Method == http.MethodGet:
		list := make([]notes.Note, 0, len(b.order))
		for _, id := range b.order {
			list = append(list, b.byID[id])
		}
		writeJSON(w, http.StatusOK, list)
	case r.URL.Path == "/api/notes" && r.Method == http.MethodPost:
		var draft notes.Draft
		if err := json.Unmarshal(body, &draft); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		b.nextID++
		n := notes.Note{
			ID:        "gen-" + strconv.Itoa(b.nextID),
			Title:     draft.Title,
			Content:   draft.Content,
			CreatedAt: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
		}
		b.order = append(b.order, n.ID)
		b.byID[n.ID] = n
		writeJSON(w, http.StatusCreated, n)
	case id != r.URL.Path && r.Method == http.MethodGet:
		n, ok := b.byID[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Note not found"})
			return
		}
		writeJSON(w, http.StatusOK, n)
	case id != r.URL.Path && r.Method == http.MethodPut:
		if _, ok := b.byID[id]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Note not found"})
			return
		}
		var n notes.Note
		if err := json.Unmarshal(body, &n); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		b.byID[id] = n
		writeJSON(w, http.StatusOK, n)
	case id != r.URL.Path && r.Method == http.MethodDelete:
		if _, ok := b.byID[id]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Note not found"})
			return
		}
		delete(b.byID, id)
		for i, v := range b.order {
			if v == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type testEnv struct {
	backend *fakeBackend
	server  *Server
	ts      *httptest.Server
	client  *http.Client
}

func newTestEnv(t *testing.T, mutate func(*config.Config)) *testEnv {
	t.Helper()
	backend := newFakeBackend()
	apiServer := httptest.NewServer(backend)
	t.Cleanup(apiServer.Close)

	cfg := config.Defaults()
	cfg.APIURL = apiServer.URL + "/api"
	cfg.LazyList = false
	if mutate != nil {
		mutate(&cfg)
	}
	client, err := api.New(cfg.APIURL, api.Options{Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("api client: %v", err)
	}
	srv := NewServer(cfg, client)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	httpClient := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return &testEnv{backend: backend, server: srv, ts: ts, client: httpClient}
}
