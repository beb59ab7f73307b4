package telemetry

import (
	"sync"

	"github.com/areawatch/areawatch-core/internal/sensor"
)

// Cache holds the last-known snapshot of every monitored area, plus the
// disconnection sets computed on the most recent merge.
//
// The cache is single-writer by design: only the summary poll pipeline
// calls Merge. Readers (rule evaluation, the API layer) get deep-copied
// snapshots, so a merge is never observable half-applied.
//
// Thread Safety: all methods are safe for concurrent use.
type Cache struct {
	mu           sync.RWMutex
	areas        map[string]*AreaSnapshot
	disconnected map[string][]sensor.Key
	onMerge      func(areas map[string]*AreaSnapshot, disconnected map[string][]sensor.Key)
}

// NewCache creates an empty telemetry cache.
func NewCache() *Cache {
	return &Cache{
		areas:        make(map[string]*AreaSnapshot),
		disconnected: make(map[string][]sensor.Key),
	}
}

// SetOnMerge registers a callback invoked after every merge with deep
// copies of the merged state and the fresh disconnection sets. Used to push
// area updates to WebSocket clients. The callback runs outside the cache
// lock.
func (c *Cache) SetOnMerge(fn func(areas map[string]*AreaSnapshot, disconnected map[string][]sensor.Key)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMerge = fn
}

// Merge folds the latest authoritative payload into the cache and
// recomputes the disconnection sets.
//
// Merge policy:
//   - areas not seen before are added wholesale
//   - known areas keep their non-tracker fields (label, box geometry);
//     only the tracker is replaced
//   - a known area whose update carries no tracker keeps its previous
//     tracker: telemetry omission does not delete metadata
//
// Disconnection sets are diffed against the incoming payload itself (the
// latest authoritative baseline), not against the merged result, before
// the merge is installed. The merged state and the disconnection map are
// swapped in together under the lock, so readers always observe a
// consistent pair.
//
// The returned map is the fresh disconnection set, keyed by area.
func (c *Cache) Merge(incoming map[string]*AreaSnapshot) map[string][]sensor.Key {
	c.mu.Lock()

	disconnections := DetectDisconnections(c.areas, incoming)

	merged := make(map[string]*AreaSnapshot, len(c.areas)+len(incoming))
	for areaID, prev := range c.areas {
		merged[areaID] = prev
	}
	for areaID, update := range incoming {
		if update == nil {
			continue
		}
		prev, known := merged[areaID]
		if !known {
			merged[areaID] = update.DeepCopy()
			continue
		}

		next := prev.DeepCopy()
		if update.Tracker != nil {
			next.Tracker = update.Tracker.DeepCopy()
		}
		merged[areaID] = next
	}

	c.areas = merged
	c.disconnected = disconnections
	onMerge := c.onMerge
	c.mu.Unlock()

	if onMerge != nil {
		onMerge(c.Snapshot(), copyDisconnections(disconnections))
	}

	return copyDisconnections(disconnections)
}

// Snapshot returns a deep copy of the merged cache.
func (c *Cache) Snapshot() map[string]*AreaSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make(map[string]*AreaSnapshot, len(c.areas))
	for areaID, area := range c.areas {
		snapshot[areaID] = area.DeepCopy()
	}
	return snapshot
}

// Area returns a deep copy of one area's snapshot, or nil if unknown.
func (c *Cache) Area(areaID string) *AreaSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.areas[areaID].DeepCopy()
}

// Disconnections returns the disconnection sets computed by the most
// recent merge.
func (c *Cache) Disconnections() map[string][]sensor.Key {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copyDisconnections(c.disconnected)
}

func copyDisconnections(src map[string][]sensor.Key) map[string][]sensor.Key {
	cpy := make(map[string][]sensor.Key, len(src))
	for areaID, keys := range src {
		cpy[areaID] = append([]sensor.Key(nil), keys...)
	}
	return cpy
}
