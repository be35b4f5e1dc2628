// Package pages holds the page controllers of the notes UI. A controller
// owns one page's transient state and talks to the notes API and to the
// surrounding UI only through the interfaces declared here, so the same
// controllers drive the web pages and the terminal client.
package pages

import (
	"context"
	"errors"
	"time"

	"thinkboard/internal/notes"
)

const (
	HomePath   = "/"
	CreatePath = "/create"
)

func NotePath(id string) string {
	return "/notes/" + id
}

var (
	// ErrBusy is returned when an action is triggered while the same
	// controller already has a save or delete in flight.
	ErrBusy      = errors.New("another request is in flight")
	ErrDeclined  = errors.New("delete not confirmed")
	ErrNotLoaded = errors.New("note not loaded")
)

type NotesAPI interface {
	List(ctx context.Context) ([]notes.Note, error)
	Get(ctx context.Context, id string) (notes.Note, error)
	Create(ctx context.Context, draft notes.Draft) (notes.Note, error)
	Update(ctx context.Context, note notes.Note) (notes.Note, error)
	Delete(ctx context.Context, id string) error
}

type Notifier interface {
	Notify(n Notification)
}

type Navigator interface {
	Navigate(path string)
}

// Confirmer asks the user a blocking yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type Deps struct {
	API       NotesAPI
	Notifier  Notifier
	Navigator Navigator
	Confirmer Confirmer
}

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Notification struct {
	Kind     Kind
	Message  string
	Icon     string
	Duration time.Duration
}

const (
	successDuration   = 2 * time.Second
	errorDuration     = 3 * time.Second
	rateLimitDuration = 4 * time.Second
)

const DeletePrompt = "Are you sure you want to delete this note?"

func success(msg string) Notification {
	return Notification{Kind: KindSuccess, Message: msg, Duration: successDuration}
}

func failure(msg string) Notification {
	return Notification{Kind: KindError, Message: msg, Duration: errorDuration}
}

var (
	msgLoadFailed      = failure("Failed to load notes")
	msgCreateRequired  = failure("All fields are required")
	msgCreated         = success("Note created successfully!")
	msgCreateFailed    = failure("Failed to create note")
	msgCreateThrottled = Notification{
		Kind:     KindError,
		Message:  "Slow down! You're creating notes too fast",
		Icon:     "💀",
		Duration: rateLimitDuration,
	}
	msgFetchFailed  = failure("Failed to fetch the note")
	msgEditRequired = failure("Please add a title or content")
	msgUpdated      = success("Note updated successfully")
	msgUpdateFailed = failure("Failed to update note")
	msgDeleted      = success("Note deleted")
	msgDeleteFailed = failure("Failed to delete note")
)

// View names the mutually exclusive rendering a page is in.
type View string

const (
	ViewLoading     View = "loading"
	ViewRateLimited View = "rate-limited"
	ViewEmpty       View = "empty"
	ViewGrid        View = "grid"
	ViewReady       View = "ready"
	ViewFetchFailed View = "fetch-failed"
)
