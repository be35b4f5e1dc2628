package web

import (
	"context"
	"net/http"

	"thinkboard/internal/pages"
)

// redirectNavigator remembers the last navigation so the handler can
// answer with a redirect once the controller returns.
type redirectNavigator struct {
	target string
}

func (n *redirectNavigator) Navigate(path string) {
	n.target = path
}

func (n *redirectNavigator) redirect(w http.ResponseWriter, r *http.Request) bool {
	if n.target == "" {
		return false
	}
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", n.target)
		w.WriteHeader(http.StatusNoContent)
		return true
	}
	http.Redirect(w, r, n.target, http.StatusSeeOther)
	return true
}

// answeredConfirmer replays the answer the user gave in the
// confirmation dialog.
type answeredConfirmer bool

func (a answeredConfirmer) Confirm(context.Context, string) bool {
	return bool(a)
}

func (s *Server) notifier(r *http.Request) toastNotifier {
	return toastNotifier{store: s.toasts, key: toastKey(r), now: s.toasts.now}
}

func (s *Server) deps(r *http.Request, nav pages.Navigator, confirm pages.Confirmer) pages.Deps {
	return pages.Deps{
		API:       s.api,
		Notifier:  s.notifier(r),
		Navigator: nav,
		Confirmer: confirm,
	}
}
