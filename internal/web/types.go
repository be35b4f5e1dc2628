package web

import (
	"html/template"

	"thinkboard/internal/notes"
	"thinkboard/internal/pages"
)

type ViewData struct {
	Title           string
	ContentTemplate string
	ContentHTML     template.HTML
	Toasts          []Toast
	// OOB marks fragment responses that also swap the toast container.
	OOB    bool
	List   pages.ListState
	Form   FormData
	Detail pages.DetailState
	Stats  notes.Stats
	Prompt string
	// From is where the delete dialog returns when cancelled.
	From string
}

// FormData carries the editable fields back into a re-rendered form.
type FormData struct {
	ID        string
	Title     string
	Content   string
	CreatedAt string
	UpdatedAt string
}
