package sensor

import "sync"

// Catalog holds the live, reconciled sensor taxonomy for the process.
//
// It is the single writer's view of "what sensors exist right now": the
// poll pipeline (or the MQTT ingest) pushes fresh device configurations in,
// and presentation layers read the reconciled result out. A malformed or
// missing device payload never reaches UpdateDevices, so the catalog always
// holds its last good value.
//
// Thread Safety: all methods are safe for concurrent use.
type Catalog struct {
	domain Domain

	mu        sync.RWMutex
	devices   []DeviceConfig
	catalog   []Descriptor
	perDevice []Descriptor
}

// NewCatalog creates a catalog for the given domain, initialised to the
// registry defaults so readers always see the full taxonomy, even before
// the first device payload arrives.
func NewCatalog(domain Domain) *Catalog {
	catalog, perDevice := Reconcile(nil, domain)
	return &Catalog{
		domain:    domain,
		catalog:   catalog,
		perDevice: perDevice,
	}
}

// Domain returns the display domain this catalog reconciles for.
func (c *Catalog) Domain() Domain {
	return c.domain
}

// UpdateDevices replaces the device list and re-reconciles the catalog.
func (c *Catalog) UpdateDevices(configs []DeviceConfig) {
	catalog, perDevice := Reconcile(configs, c.domain)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.devices = append([]DeviceConfig(nil), configs...)
	c.catalog = catalog
	c.perDevice = perDevice
}

// Descriptors returns the reconciled catalog. The slice is a copy.
func (c *Catalog) Descriptors() []Descriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Descriptor(nil), c.catalog...)
}

// PerDevice returns the per-device descriptor view. The slice is a copy.
func (c *Catalog) PerDevice() []Descriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Descriptor(nil), c.perDevice...)
}

// Devices returns the last good device configuration list. The slice is a copy.
func (c *Catalog) Devices() []DeviceConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]DeviceConfig(nil), c.devices...)
}
