package web

import (
	"net/http"

	"thinkboard/internal/config"
	"thinkboard/internal/pages"
	"thinkboard/internal/render"
)

type Server struct {
	cfg      config.Config
	api      pages.NotesAPI
	mux      *http.ServeMux
	views    *Templates
	toasts   *toastStore
	inflight *inflight
}

func NewServer(cfg config.Config, api pages.NotesAPI) *Server {
	s := &Server{
		cfg:      cfg,
		api:      api,
		mux:      http.NewServeMux(),
		views:    MustParseTemplates(render.NewMarkdown(cfg.CodeStyle)),
		toasts:   newToastStore(),
		inflight: newInflight(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return logRequests(withSession(s.mux))
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleHome)
	s.mux.HandleFunc("GET /partials/notes", s.handleNotesRegion)
	s.mux.HandleFunc("GET "+pages.CreatePath, s.handleCreateForm)
	s.mux.HandleFunc("POST "+pages.CreatePath, s.handleCreate)
	s.mux.HandleFunc("POST "+pages.CreatePath+"/stats", s.handleCreateStats)
	s.mux.HandleFunc("GET /notes/{id}", s.handleDetail)
	s.mux.HandleFunc("POST /notes/{id}", s.handleSave)
	s.mux.HandleFunc("GET /notes/{id}/delete", s.handleConfirmDelete)
	s.mux.HandleFunc("POST /notes/{id}/delete", s.handleDelete)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
}
