package api

import (
	"net/http"

	"github.com/areawatch/areawatch-core/internal/upstream"
)

// handleListMessages returns the most recently fetched operator messages.
// The list is a passthrough of the upstream accounts service, refreshed by
// the message poll; an empty list is served before the first fetch lands.
func (s *Server) handleListMessages(w http.ResponseWriter, _ *http.Request) {
	messages := []upstream.OperatorMessage{}
	if s.messages != nil {
		messages = s.messages.List()
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}
