package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"thinkboard/internal/api"
	"thinkboard/internal/notes"
	"thinkboard/internal/pages"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	list := pages.NewList(s.deps(r, nil, nil))
	if !s.cfg.LazyList || r.URL.Query().Get("sync") == "1" {
		_ = list.Activate(r.Context())
	}
	data := ViewData{
		Title:           "Notes",
		ContentTemplate: "list",
		List:            list.State(),
		Toasts:          s.takeToasts(r),
	}
	s.views.RenderPage(w, data)
}

// handleNotesRegion serves the list region that the home page loads
// after its loading view is on screen.
func (s *Server) handleNotesRegion(w http.ResponseWriter, r *http.Request) {
	list := pages.NewList(s.deps(r, nil, nil))
	_ = list.Activate(r.Context())
	data := ViewData{
		List:   list.State(),
		Toasts: s.takeToasts(r),
		OOB:    true,
	}
	s.views.RenderTemplate(w, "notes_region", data)
}

func (s *Server) handleCreateForm(w http.ResponseWriter, r *http.Request) {
	data := ViewData{
		Title:           "Create New Note",
		ContentTemplate: "create",
		Toasts:          s.takeToasts(r),
	}
	s.views.RenderPage(w, data)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	unlock, ok := s.inflight.TryLock(toastKey(r) + "|create")
	if !ok {
		s.notifier(r).Notify(busyNotice)
		s.renderCreate(w, r, http.StatusConflict, r.PostForm.Get("title"), r.PostForm.Get("content"))
		return
	}
	defer unlock()

	nav := &redirectNavigator{}
	c := pages.NewCreate(s.deps(r, nav, nil))
	c.SetTitle(r.PostForm.Get("title"))
	c.SetContent(r.PostForm.Get("content"))
	err := c.Submit(r.Context())
	if err == nil && nav.redirect(w, r) {
		return
	}

	st := c.State()
	s.renderCreate(w, r, failureStatus(err), st.Title, st.Content)
}

func (s *Server) renderCreate(w http.ResponseWriter, r *http.Request, status int, title, content string) {
	data := ViewData{
		Title:           "Create New Note",
		ContentTemplate: "create",
		Form:            FormData{Title: title, Content: content},
		Stats:           notes.CountStats(content),
		Toasts:          s.takeToasts(r),
	}
	s.views.RenderPageStatus(w, status, data)
}

func (s *Server) handleCreateStats(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	data := ViewData{Stats: notes.CountStats(r.PostForm.Get("content"))}
	s.views.RenderTemplate(w, "create_stats", data)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	d := pages.NewDetail(id, s.deps(r, nil, nil))
	err := d.Activate(r.Context())
	st := d.State()
	status := http.StatusOK
	if err != nil {
		status = failureStatus(err)
	}
	s.renderDetail(w, r, status, st)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id := r.PathValue("id")
	nav := &redirectNavigator{}
	d := pages.NewDetail(id, s.deps(r, nav, nil))
	d.Load(postedNote(r, id))

	unlock, ok := s.inflight.TryLock(toastKey(r) + "|note:" + id)
	if !ok {
		s.notifier(r).Notify(busyNotice)
		s.renderDetail(w, r, http.StatusConflict, d.State())
		return
	}
	defer unlock()

	err := d.Save(r.Context())
	if err == nil && nav.redirect(w, r) {
		return
	}
	s.renderDetail(w, r, failureStatus(err), d.State())
}

func (s *Server) handleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	data := ViewData{
		Title:           "Delete note",
		ContentTemplate: "confirm_delete",
		Detail:          pages.DetailState{ID: id},
		Prompt:          pages.DeletePrompt,
		From:            backTarget(r.URL.Query().Get("from"), id),
		Toasts:          s.takeToasts(r),
	}
	s.views.RenderPage(w, data)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id := r.PathValue("id")
	back := &redirectNavigator{target: backTarget(r.PostForm.Get("from"), id)}
	unlock, ok := s.inflight.TryLock(toastKey(r) + "|note:" + id)
	if !ok {
		s.notifier(r).Notify(busyNotice)
		back.redirect(w, r)
		return
	}
	defer unlock()

	nav := &redirectNavigator{}
	confirmed := answeredConfirmer(strings.EqualFold(r.PostForm.Get("confirm"), "yes"))
	d := pages.NewDetail(id, s.deps(r, nav, confirmed))
	err := d.Delete(r.Context())
	if err == nil && nav.redirect(w, r) {
		return
	}
	// Declined or failed: back where the dialog was opened, which shows
	// any toast.
	back.redirect(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) renderDetail(w http.ResponseWriter, r *http.Request, status int, st pages.DetailState) {
	data := ViewData{
		Title:           "Edit Note",
		ContentTemplate: "detail",
		Detail:          st,
		Toasts:          s.takeToasts(r),
	}
	if st.Note != nil {
		data.Form = FormData{
			ID:        st.ID,
			Title:     st.Note.Title,
			Content:   st.Note.Content,
			CreatedAt: formatTimestamp(st.Note.CreatedAt),
			UpdatedAt: formatTimestamp(st.Note.UpdatedAt),
		}
	} else {
		data.Title = "Note unavailable"
		data.ContentTemplate = "detail_error"
	}
	s.views.RenderPageStatus(w, status, data)
}

func postedNote(r *http.Request, id string) notes.Note {
	return notes.Note{
		ID:        id,
		Title:     r.PostForm.Get("title"),
		Content:   r.PostForm.Get("content"),
		CreatedAt: parseTimestamp(r.PostForm.Get("createdAt")),
		UpdatedAt: parseTimestamp(r.PostForm.Get("updatedAt")),
	}
}

// backTarget is the local path the delete dialog returns to, falling
// back to the note page.
func backTarget(raw, id string) string {
	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") && !strings.HasPrefix(raw, "/\\") {
		return raw
	}
	return pages.NotePath(id)
}

// failureStatus maps a controller error to the status of the
// re-rendered page.
func failureStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, notes.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, pages.ErrBusy):
		return http.StatusConflict
	case api.IsRateLimited(err):
		return http.StatusTooManyRequests
	case api.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(raw string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}
	}
	return t
}
