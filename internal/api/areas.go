package api

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/areawatch/areawatch-core/internal/sensor"
	"github.com/areawatch/areawatch-core/internal/telemetry"
)

// areaView is one area in the GET /areas response: the cached snapshot plus
// the sensor keys that went silent on the most recent summary merge.
type areaView struct {
	*telemetry.AreaSnapshot
	Disconnected []sensor.Key `json:"disconnected,omitempty"`
}

// handleListAreas returns every cached area with its disconnection set,
// sorted by area ID for a stable response shape.
func (s *Server) handleListAreas(w http.ResponseWriter, _ *http.Request) {
	snapshot := s.cache.Snapshot()
	disconnected := s.cache.Disconnections()

	areas := make([]areaView, 0, len(snapshot))
	for areaID, area := range snapshot {
		areas = append(areas, areaView{
			AreaSnapshot: area,
			Disconnected: disconnected[areaID],
		})
	}
	sort.Slice(areas, func(i, j int) bool {
		return areas[i].AreaID < areas[j].AreaID
	})

	writeJSON(w, http.StatusOK, map[string]any{"areas": areas})
}

// handleGetArea returns one area's snapshot.
func (s *Server) handleGetArea(w http.ResponseWriter, r *http.Request) {
	areaID := chi.URLParam(r, "id")
	area := s.cache.Area(areaID)
	if area == nil {
		writeNotFound(w, "area not found: "+areaID)
		return
	}

	writeJSON(w, http.StatusOK, areaView{
		AreaSnapshot: area,
		Disconnected: s.cache.Disconnections()[areaID],
	})
}

// handleAreaHistory returns the rolling environment sample window for an
// area, oldest sample first. An area with no environmental sensors has an
// empty window, which is not an error.
func (s *Server) handleAreaHistory(w http.ResponseWriter, r *http.Request) {
	areaID := chi.URLParam(r, "id")
	if s.cache.Area(areaID) == nil {
		writeNotFound(w, "area not found: "+areaID)
		return
	}

	window := s.history.Window(areaID)
	if window == nil {
		window = []telemetry.EnvSample{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"area_id": areaID,
		"samples": window,
	})
}
