package pages

import (
	"context"
	"net/http"
	"sync"

	"thinkboard/internal/api"
	"thinkboard/internal/notes"
)

type call struct {
	Method string
	ID     string
	Draft  notes.Draft
	Note   notes.Note
}

type fakeAPI struct {
	mu    sync.Mutex
	calls []call

	list    []notes.Note
	note    notes.Note
	err     error
	blockCh chan struct{}
}

func (f *fakeAPI) record(c call) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()
}

func (f *fakeAPI) wait(ctx context.Context) {
	if f.blockCh == nil {
		return
	}
	select {
	case <-f.blockCh:
	case <-ctx.Done():
	}
}

func (f *fakeAPI) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func (f *fakeAPI) List(ctx context.Context) ([]notes.Note, error) {
	f.record(call{Method: http.MethodGet})
	f.wait(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeAPI) Get(ctx context.Context, id string) (notes.Note, error) {
	f.record(call{Method: http.MethodGet, ID: id})
	f.wait(ctx)
	if f.err != nil {
		return notes.Note{}, f.err
	}
	return f.note, nil
}

func (f *fakeAPI) Create(ctx context.Context, draft notes.Draft) (notes.Note, error) {
	f.record(call{Method: http.MethodPost, Draft: draft})
	f.wait(ctx)
	if f.err != nil {
		return notes.Note{}, f.err
	}
	return notes.Note{ID: "new", Title: draft.Title, Content: draft.Content}, nil
}

func (f *fakeAPI) Update(ctx context.Context, note notes.Note) (notes.Note, error) {
	f.record(call{Method: http.MethodPut, ID: note.ID, Note: note})
	f.wait(ctx)
	if f.err != nil {
		return notes.Note{}, f.err
	}
	return note, nil
}

func (f *fakeAPI) Delete(ctx context.Context, id string) error {
	f.record(call{Method: http.MethodDelete, ID: id})
	f.wait(ctx)
	return f.err
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []Notification
}

func (f *fakeNotifier) Notify(n Notification) {
	f.mu.Lock()
	f.sent = append(f.sent, n)
	f.mu.Unlock()
}

func (f *fakeNotifier) Sent() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Notification(nil), f.sent...)
}

type fakeNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (f *fakeNavigator) Navigate(path string) {
	f.mu.Lock()
	f.paths = append(f.paths, path)
	f.mu.Unlock()
}

func (f *fakeNavigator) Paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}

type fakeConfirmer struct {
	answer  bool
	prompts []string
}

func (f *fakeConfirmer) Confirm(_ context.Context, prompt string) bool {
	f.prompts = append(f.prompts, prompt)
	return f.answer
}

type harness struct {
	api     *fakeAPI
	notify  *fakeNotifier
	nav     *fakeNavigator
	confirm *fakeConfirmer
}

func newHarness() *harness {
	return &harness{
		api:     &fakeAPI{},
		notify:  &fakeNotifier{},
		nav:     &fakeNavigator{},
		confirm: &fakeConfirmer{},
	}
}

func (h *harness) deps() Deps {
	return Deps{API: h.api, Notifier: h.notify, Navigator: h.nav, Confirmer: h.confirm}
}

func statusErr(status int) error {
	return &api.Error{Status: status, Message: http.StatusText(status)}
}
