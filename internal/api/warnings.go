package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/areawatch/areawatch-core/internal/warning"
)

// ruleRequest is the mutable subset of a warning rule accepted from clients.
// ID and timestamps are server-assigned.
type ruleRequest struct {
	Name       string                  `json:"name"`
	Conditions []warning.AreaCondition `json:"conditions"`
	Messages   []warning.Message       `json:"messages"`
}

// handleListWarnings returns all warning rules.
func (s *Server) handleListWarnings(w http.ResponseWriter, r *http.Request) {
	rules, err := s.rules.List(r.Context())
	if err != nil {
		s.logger.Error("listing warning rules", "error", err)
		writeInternalError(w, "failed to list warning rules")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"warnings": rules})
}

// handleGetWarning returns one warning rule by ID.
func (s *Server) handleGetWarning(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rule, err := s.rules.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, warning.ErrRuleNotFound) {
			writeNotFound(w, "warning rule not found: "+id)
			return
		}
		s.logger.Error("fetching warning rule", "id", id, "error", err)
		writeInternalError(w, "failed to fetch warning rule")
		return
	}
	writeJSON(w, http.StatusOK, rule)
}

// handleCreateWarning creates a warning rule. Requires the create permission.
func (s *Server) handleCreateWarning(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	if !identity.Permissions.CanCreate {
		writeForbidden(w, "creating warning rules requires the create permission")
		return
	}

	var req ruleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body: "+err.Error())
		return
	}

	now := time.Now().UTC()
	rule := warning.Rule{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Conditions: req.Conditions,
		Messages:   req.Messages,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.rules.Create(r.Context(), &rule); err != nil {
		switch {
		case errors.Is(err, warning.ErrInvalidName):
			writeBadRequest(w, "warning rule name must not be blank")
		case errors.Is(err, warning.ErrRuleExists):
			writeConflict(w, "a warning rule with that ID already exists")
		default:
			s.logger.Error("creating warning rule", "error", err)
			writeInternalError(w, "failed to create warning rule")
		}
		return
	}

	s.logger.Info("warning rule created", "id", rule.ID, "name", rule.Name, "by", identity.UID)
	writeJSON(w, http.StatusCreated, rule)
}

// handleUpdateWarning replaces the mutable fields of a warning rule.
// Requires the edit permission.
func (s *Server) handleUpdateWarning(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	if !identity.Permissions.CanEdit {
		writeForbidden(w, "editing warning rules requires the edit permission")
		return
	}

	id := chi.URLParam(r, "id")
	existing, err := s.rules.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, warning.ErrRuleNotFound) {
			writeNotFound(w, "warning rule not found: "+id)
			return
		}
		s.logger.Error("fetching warning rule for update", "id", id, "error", err)
		writeInternalError(w, "failed to fetch warning rule")
		return
	}

	var req ruleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body: "+err.Error())
		return
	}

	rule := *existing
	rule.Name = req.Name
	rule.Conditions = req.Conditions
	rule.Messages = req.Messages
	rule.UpdatedAt = time.Now().UTC()

	if err := s.rules.Update(r.Context(), &rule); err != nil {
		switch {
		case errors.Is(err, warning.ErrInvalidName):
			writeBadRequest(w, "warning rule name must not be blank")
		case errors.Is(err, warning.ErrRuleNotFound):
			writeNotFound(w, "warning rule not found: "+id)
		default:
			s.logger.Error("updating warning rule", "id", id, "error", err)
			writeInternalError(w, "failed to update warning rule")
		}
		return
	}

	s.logger.Info("warning rule updated", "id", rule.ID, "by", identity.UID)
	writeJSON(w, http.StatusOK, rule)
}

// handleDeleteWarning removes a warning rule. Requires the delete permission.
func (s *Server) handleDeleteWarning(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	if !identity.Permissions.CanDelete {
		writeForbidden(w, "deleting warning rules requires the delete permission")
		return
	}

	id := chi.URLParam(r, "id")
	if err := s.rules.Delete(r.Context(), id); err != nil {
		if errors.Is(err, warning.ErrRuleNotFound) {
			writeNotFound(w, "warning rule not found: "+id)
			return
		}
		s.logger.Error("deleting warning rule", "id", id, "error", err)
		writeInternalError(w, "failed to delete warning rule")
		return
	}

	s.logger.Info("warning rule deleted", "id", id, "by", identity.UID)
	w.WriteHeader(http.StatusNoContent)
}
