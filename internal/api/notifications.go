package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleListNotifications returns the queue in arrival order.
func (s *Server) handleListNotifications(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"notifications": s.queue.Entries(),
	})
}

// handleDismissNotification removes the entry at the given position.
//
// Dismissal is index-based because the UI renders the queue positionally.
// An index that no longer exists (a concurrent dismissal or a raced
// addition) is treated as already handled, so the response is 204 either
// way.
func (s *Server) handleDismissNotification(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeBadRequest(w, "notification index must be an integer")
		return
	}

	s.queue.Dismiss(index)
	w.WriteHeader(http.StatusNoContent)
}
