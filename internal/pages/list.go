package pages

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"thinkboard/internal/api"
	"thinkboard/internal/notes"
)

// List is the controller of the notes list page.
type List struct {
	api    NotesAPI
	notify Notifier

	mu          sync.Mutex
	loading     bool
	rateLimited bool
	notes       []notes.Note
}

type ListState struct {
	Loading     bool
	RateLimited bool
	Notes       []notes.Note
	View        View
}

func NewList(deps Deps) *List {
	return &List{
		api:     deps.API,
		notify:  deps.Notifier,
		loading: true,
		notes:   []notes.Note{},
	}
}

// Activate fetches every note once. A 429 marks the page rate limited
// and keeps the previous list; other failures notify and keep it too.
func (l *List) Activate(ctx context.Context) error {
	l.mu.Lock()
	l.loading = true
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		l.loading = false
		l.mu.Unlock()
	}()

	list, err := l.api.List(ctx)
	if err != nil {
		if api.IsRateLimited(err) {
			slog.Warn("list notes rate limited", "err", err)
			l.mu.Lock()
			l.rateLimited = true
			l.mu.Unlock()
			return fmt.Errorf("list notes: %w", err)
		}
		slog.Error("list notes", "err", err)
		l.notify.Notify(msgLoadFailed)
		return fmt.Errorf("list notes: %w", err)
	}

	l.mu.Lock()
	l.notes = list
	l.rateLimited = false
	l.mu.Unlock()
	return nil
}

func (l *List) State() ListState {
	l.mu.Lock()
	defer l.mu.Unlock()
	st := ListState{
		Loading:     l.loading,
		RateLimited: l.rateLimited,
		Notes:       append([]notes.Note(nil), l.notes...),
	}
	switch {
	case st.Loading:
		st.View = ViewLoading
	case st.RateLimited:
		st.View = ViewRateLimited
	case len(st.Notes) == 0:
		st.View = ViewEmpty
	default:
		st.View = ViewGrid
	}
	return st
}
