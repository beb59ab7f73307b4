package api

import (
	"net/http"

	"github.com/areawatch/areawatch-core/internal/sensor"
)

// sensorsResponse is the payload for GET /sensors: the reconciled catalog
// (one descriptor per sensor key present on site, plus registry defaults)
// and the per-device view (one descriptor per physical device).
type sensorsResponse struct {
	Domain    sensor.Domain         `json:"domain"`
	Catalog   []sensor.Descriptor   `json:"catalog"`
	PerDevice []sensor.Descriptor   `json:"per_device"`
	Devices   []sensor.DeviceConfig `json:"devices"`
}

// handleSensors returns the reconciled sensor taxonomy.
func (s *Server) handleSensors(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, sensorsResponse{
		Domain:    s.catalog.Domain(),
		Catalog:   s.catalog.Descriptors(),
		PerDevice: s.catalog.PerDevice(),
		Devices:   s.catalog.Devices(),
	})
}
