package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"thinkboard/internal/pages"
)

type Toast struct {
	ID              string
	Message         string
	Kind            string
	Icon            string
	DurationSeconds int
	CreatedAt       time.Time
}

type toastStore struct {
	mu        sync.Mutex
	bySession map[string][]Toast
	now       func() time.Time
}

func newToastStore() *toastStore {
	return &toastStore{bySession: make(map[string][]Toast), now: time.Now}
}

func (s *toastStore) Add(key string, toast Toast) {
	if key == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bySession[key] = append(s.bySession[key], toast)
}

// Take returns the still-visible toasts for key and forgets all of them;
// each toast is shown on exactly one render.
func (s *toastStore) Take(key string) []Toast {
	if key == "" {
		return nil
	}
	now := s.now()
	s.mu.Lock()
	toasts := s.bySession[key]
	delete(s.bySession, key)
	s.mu.Unlock()

	var active []Toast
	for _, toast := range toasts {
		if toast.DurationSeconds > 0 {
			exp := toast.CreatedAt.Add(time.Duration(toast.DurationSeconds) * time.Second)
			if now.After(exp) {
				continue
			}
		}
		active = append(active, toast)
	}
	return active
}

func toastKey(r *http.Request) string {
	if id, ok := Session(r.Context()); ok {
		return "session:" + id
	}
	return ""
}

func (s *Server) takeToasts(r *http.Request) []Toast {
	return s.toasts.Take(toastKey(r))
}

// busyNotice answers a submit that arrives while the same form is still
// being processed for this session.
var busyNotice = pages.Notification{
	Kind:     pages.KindError,
	Message:  "Still working on your last request",
	Duration: 3 * time.Second,
}

// toastNotifier delivers controller notifications to the session's
// toast queue.
type toastNotifier struct {
	store *toastStore
	key   string
	now   func() time.Time
}

func (n toastNotifier) Notify(msg pages.Notification) {
	n.store.Add(n.key, Toast{
		ID:              uuid.NewString(),
		Message:         msg.Message,
		Kind:            string(msg.Kind),
		Icon:            msg.Icon,
		DurationSeconds: int(msg.Duration / time.Second),
		CreatedAt:       n.now(),
	})
}
