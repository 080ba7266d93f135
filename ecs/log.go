package ecs

import "github.com/rs/zerolog"

// LogStats writes a snapshot of the scene's statistics as a single event.
func (s *Scene) LogStats(level zerolog.Level) {
	stats := s.CollectStats()

	pools := zerolog.Arr()
	for _, p := range stats.Pools {
		pools = pools.Dict(zerolog.Dict().
			Uint32("component_id", uint32(p.ID)).
			Str("component_name", p.Type).
			Int("len", p.Len).
			Int("free", p.Free).
			Int("capacity", p.Capacity))
	}

	s.logger.WithLevel(level).
		Int("entities", stats.EntityCount).
		Int("slots", stats.SlotCount).
		Int("free_slots", stats.FreeSlots).
		Int("total_pools", stats.PoolCount).
		Array("pools", pools).
		Msg("scene stats")
}
