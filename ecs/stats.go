package ecs

import "slices"

// SceneStats is a snapshot of a scene's bookkeeping.
type SceneStats struct {
	EntityCount int
	SlotCount   int
	FreeSlots   int
	PoolCount   int
	Pools       []PoolStats
}

// PoolStats describes one component pool.
type PoolStats struct {
	ID       ComponentID
	Type     string
	Len      int // values currently stored
	Dense    int // dense slots handed out so far
	Free     int // dense slots waiting for reuse
	Capacity int // dense slots allocated
}

// CollectStats gathers statistics about the scene's entities and pools.
// Pools are listed in component id order.
func (s *Scene) CollectStats() *SceneStats {
	stats := &SceneStats{
		EntityCount: s.live,
		SlotCount:   len(s.records),
		FreeSlots:   len(s.freeSlots),
		PoolCount:   len(s.poolIDs),
		Pools:       make([]PoolStats, 0, len(s.poolIDs)),
	}

	ids := slices.Clone(s.poolIDs)
	slices.Sort(ids)
	for _, id := range ids {
		pool, ok := s.pools.Get(id)
		if !ok {
			continue
		}
		ps := pool.stats()
		ps.ID = id
		stats.Pools = append(stats.Pools, ps)
	}

	return stats
}
