package pages

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"thinkboard/internal/api"
	"thinkboard/internal/notes"
)

// Create is the controller of the new-note form.
type Create struct {
	api    NotesAPI
	notify Notifier
	nav    Navigator

	mu      sync.Mutex
	title   string
	content string
	saving  bool
}

type CreateState struct {
	Title   string
	Content string
	Saving  bool
	Stats   notes.Stats
}

func NewCreate(deps Deps) *Create {
	return &Create{
		api:    deps.API,
		notify: deps.Notifier,
		nav:    deps.Navigator,
	}
}

func (c *Create) SetTitle(title string) {
	c.mu.Lock()
	c.title = title
	c.mu.Unlock()
}

func (c *Create) SetContent(content string) {
	c.mu.Lock()
	c.content = content
	c.mu.Unlock()
}

func (c *Create) State() CreateState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CreateState{
		Title:   c.title,
		Content: c.content,
		Saving:  c.saving,
		Stats:   notes.CountStats(c.content),
	}
}

// Submit validates the form and sends one create request. Values are
// sent as typed; trimming only decides whether they count as empty.
func (c *Create) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.saving {
		c.mu.Unlock()
		return ErrBusy
	}
	if err := notes.Validate(c.title, c.content); err != nil {
		c.mu.Unlock()
		c.notify.Notify(msgCreateRequired)
		return err
	}
	draft := notes.Draft{Title: c.title, Content: c.content}
	c.saving = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.saving = false
		c.mu.Unlock()
	}()

	created, err := c.api.Create(ctx, draft)
	if err != nil {
		slog.Error("create note", "err", err)
		if api.IsRateLimited(err) {
			c.notify.Notify(msgCreateThrottled)
		} else {
			c.notify.Notify(msgCreateFailed)
		}
		return fmt.Errorf("create note: %w", err)
	}
	slog.Info("note created", "id", created.ID)
	c.notify.Notify(msgCreated)
	c.nav.Navigate(HomePath)
	return nil
}
