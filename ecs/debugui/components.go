package debugui

import (
	"github.com/plus3/sparsecs/ecs"
)

type EntityBrowserComponent struct {
	cache              *EntityBrowserCache
	selectedEntity     ecs.Entity
	filterText         string
	filterPool         *ecs.ComponentID
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct {
	selectedEntity ecs.Entity
}

type PoolViewerComponent struct {
	cache          *PoolViewerCache
	selectedPoolID *ecs.ComponentID
	sortColumn     int
	sortAscending  bool
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

type QueryDebuggerComponent struct {
	selectedComponents map[ecs.ComponentID]bool
	maxListed          int
}
