package profilecache

import (
	"context"
	"time"
)

// storeCount is the number of typed stores owned by the registry, used to
// derive total capacity for the health predicate.
const storeCount = 7

// Stats provides comprehensive statistics about the cache state.
type Stats struct {
	Avatars       int `json:"avatars"`
	ActiveAvatars int `json:"active_avatars"`
	Profiles      int `json:"profiles"`
	Engagement    int `json:"engagement"`
	OwnerLists    int `json:"owner_lists"`
	BlockedSets   int `json:"blocked_sets"`
	MutedSets     int `json:"muted_sets"`

	TotalEntries  int `json:"total_entries"`
	TotalCapacity int `json:"total_capacity"`

	Hits      int64         `json:"hits"`
	Misses    int64         `json:"misses"`
	Evictions int64         `json:"evictions"`
	HitRate   float64       `json:"hit_rate"`
	Uptime    time.Duration `json:"uptime"`

	Healthy bool `json:"healthy"`
}

// CacheStats returns per-store sizes combined with the shared hit/miss/
// eviction counters.
func (c *Client) CacheStats() Stats {
	snapshot := c.metrics.Snapshot()
	r := c.registry

	stats := Stats{
		Avatars:       r.avatars.Len(),
		ActiveAvatars: r.active.Len(),
		Profiles:      r.profiles.Len(),
		Engagement:    r.engagement.Len(),
		OwnerLists:    r.ownerLists.Len(),
		BlockedSets:   r.blocked.Len(),
		MutedSets:     r.muted.Len(),
		TotalCapacity: c.cfg.Capacity * storeCount,
		Hits:          snapshot.Hits,
		Misses:        snapshot.Misses,
		Evictions:     snapshot.Evictions,
		HitRate:       snapshot.HitRate,
		Uptime:        snapshot.Uptime,
	}
	stats.TotalEntries = stats.Avatars + stats.ActiveAvatars + stats.Profiles +
		stats.Engagement + stats.OwnerLists + stats.BlockedSets + stats.MutedSets
	stats.Healthy = c.healthy(stats.HitRate, stats.TotalEntries, stats.TotalCapacity)
	return stats
}

// IsHealthy reports whether the cache is performing within bounds: the hit
// rate is above 0.5 and occupancy is below 90% of total capacity.
func (c *Client) IsHealthy() bool {
	stats := c.CacheStats()
	return stats.Healthy
}

func (c *Client) healthy(hitRate float64, totalEntries, totalCapacity int) bool {
	return hitRate > 0.5 && float64(totalEntries) < 0.9*float64(totalCapacity)
}

// PerformMaintenance sweeps expired entries from every store. It is meant to
// run on a coarse schedule, either through the background loop configured by
// MaintenanceInterval or by the caller directly.
func (c *Client) PerformMaintenance() {
	start := time.Now()
	removed := c.registry.sweepExpired()
	c.logger.Info(context.Background(), "cache maintenance completed",
		"entries_removed", removed,
		"duration_ms", time.Since(start).Milliseconds())
}
