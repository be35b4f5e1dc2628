package pages

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"thinkboard/internal/notes"
)

// Detail is the controller of the view/edit page of one note.
type Detail struct {
	api     NotesAPI
	notify  Notifier
	nav     Navigator
	confirm Confirmer
	id      string

	mu          sync.Mutex
	loading     bool
	fetchFailed bool
	note        *notes.Note
	saving      bool
	deleting    bool
}

type DetailState struct {
	ID          string
	Loading     bool
	FetchFailed bool
	Saving      bool
	Deleting    bool
	Note        *notes.Note
	View        View
}

func NewDetail(id string, deps Deps) *Detail {
	return &Detail{
		api:     deps.API,
		notify:  deps.Notifier,
		nav:     deps.Navigator,
		confirm: deps.Confirmer,
		id:      id,
		loading: true,
	}
}

// Activate fetches the note. On failure the note stays nil and the page
// switches to the fetch-failed view.
func (d *Detail) Activate(ctx context.Context) error {
	d.mu.Lock()
	d.loading = true
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.loading = false
		d.mu.Unlock()
	}()

	note, err := d.api.Get(ctx, d.id)
	if err != nil {
		slog.Error("fetch note", "id", d.id, "err", err)
		d.notify.Notify(msgFetchFailed)
		d.mu.Lock()
		d.fetchFailed = true
		d.note = nil
		d.mu.Unlock()
		return fmt.Errorf("fetch note %s: %w", d.id, err)
	}
	if note.ID == "" {
		note.ID = d.id
	}

	d.mu.Lock()
	d.fetchFailed = false
	d.note = &note
	d.mu.Unlock()
	return nil
}

// Load seeds the editable copy without a fetch, for callers that
// already hold the submitted form values.
func (d *Detail) Load(note notes.Note) {
	if note.ID == "" {
		note.ID = d.id
	}
	d.mu.Lock()
	d.note = &note
	d.loading = false
	d.fetchFailed = false
	d.mu.Unlock()
}

func (d *Detail) SetTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.note != nil {
		d.note.Title = title
	}
}

func (d *Detail) SetContent(content string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.note != nil {
		d.note.Content = content
	}
}

func (d *Detail) State() DetailState {
	d.mu.Lock()
	defer d.mu.Unlock()
	st := DetailState{
		ID:          d.id,
		Loading:     d.loading,
		FetchFailed: d.fetchFailed,
		Saving:      d.saving,
		Deleting:    d.deleting,
	}
	if d.note != nil {
		cp := *d.note
		st.Note = &cp
	}
	switch {
	case st.Loading:
		st.View = ViewLoading
	case st.Note == nil:
		st.View = ViewFetchFailed
	default:
		st.View = ViewReady
	}
	return st
}

// Save sends the full editable copy as an update.
func (d *Detail) Save(ctx context.Context) error {
	d.mu.Lock()
	if d.note == nil {
		d.mu.Unlock()
		return ErrNotLoaded
	}
	if d.saving || d.deleting {
		d.mu.Unlock()
		return ErrBusy
	}
	if err := notes.Validate(d.note.Title, d.note.Content); err != nil {
		d.mu.Unlock()
		d.notify.Notify(msgEditRequired)
		return err
	}
	note := *d.note
	note.ID = d.id
	d.saving = true
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.saving = false
		d.mu.Unlock()
	}()

	if _, err := d.api.Update(ctx, note); err != nil {
		slog.Error("update note", "id", d.id, "err", err)
		d.notify.Notify(msgUpdateFailed)
		return fmt.Errorf("update note %s: %w", d.id, err)
	}
	slog.Info("note updated", "id", d.id)
	d.notify.Notify(msgUpdated)
	d.nav.Navigate(HomePath)
	return nil
}

// Delete asks for confirmation, then deletes the note. A declined
// prompt sends nothing and leaves the page as it was.
func (d *Detail) Delete(ctx context.Context) error {
	d.mu.Lock()
	busy := d.saving || d.deleting
	d.mu.Unlock()
	if busy {
		return ErrBusy
	}

	if !d.confirm.Confirm(ctx, DeletePrompt) {
		return ErrDeclined
	}

	d.mu.Lock()
	if d.saving || d.deleting {
		d.mu.Unlock()
		return ErrBusy
	}
	d.deleting = true
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.deleting = false
		d.mu.Unlock()
	}()

	if err := d.api.Delete(ctx, d.id); err != nil {
		slog.Error("delete note", "id", d.id, "err", err)
		d.notify.Notify(msgDeleteFailed)
		return fmt.Errorf("delete note %s: %w", d.id, err)
	}
	slog.Info("note deleted", "id", d.id)
	d.notify.Notify(msgDeleted)
	d.nav.Navigate(HomePath)
	return nil
}
