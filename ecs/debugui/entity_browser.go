package debugui

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sparsecs/ecs"
)

type EntityInfo struct {
	Entity         ecs.Entity
	ComponentIDs   []ecs.ComponentID
	ComponentTypes []string
}

type EntityBrowserCache struct {
	entities      []EntityInfo
	signature     sceneSignature
	sortColumn    int
	sortAscending bool
}

// sceneSignature changes whenever entities are created or destroyed or a new
// pool appears. Component assigns on existing entities do not change it, so
// the browser also rebuilds every refreshInterval renders.
type sceneSignature struct {
	live, slots, freeSlots, pools int
}

const refreshInterval = 30

func signatureOf(stats *ecs.SceneStats) sceneSignature {
	return sceneSignature{
		live:      stats.EntityCount,
		slots:     stats.SlotCount,
		freeSlots: stats.FreeSlots,
		pools:     stats.PoolCount,
	}
}

func NewEntityBrowserComponent(maxEntitiesPerPage int) EntityBrowserComponent {
	return EntityBrowserComponent{
		cache: &EntityBrowserCache{
			sortColumn:    0,
			sortAscending: true,
		},
		selectedEntity:     ecs.Invalid,
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowserComponent) Render(scene *ecs.Scene) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCacheIfNeeded(scene)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.filterPool = nil
		eb.currentPage = 0
	}
	if eb.filterPool != nil {
		name := fmt.Sprintf("#%d", *eb.filterPool)
		if t, ok := scene.Registry().TypeOf(*eb.filterPool); ok {
			name = t.String()
		}
		imgui.Text("Holding: " + name)
	}

	filteredEntities := eb.filteredEntities()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Index")
		imgui.TableSetupColumn("Generation")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.cache.sortColumn = int(spec.ColumnIndex())
			eb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
			filteredEntities = eb.filteredEntities()
		}

		startIdx := min(eb.currentPage*eb.maxEntitiesPerPage, len(filteredEntities))
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(filteredEntities))

		for _, entity := range filteredEntities[startIdx:endIdx] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntity == entity.Entity
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.Entity.Index()), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntity = entity.Entity
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.Entity.Generation()))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(entity.ComponentIDs)))
		}

		imgui.EndTable()
	}

	if len(filteredEntities) > eb.maxEntitiesPerPage {
		totalPages := (len(filteredEntities) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filteredEntities)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filteredEntities)))
	}

	imgui.End()
}

// SetPoolFilter restricts the browser to entities holding the component id.
func (eb *EntityBrowserComponent) SetPoolFilter(id ecs.ComponentID) {
	eb.filterPool = &id
	eb.currentPage = 0
}

func (eb *EntityBrowserComponent) SelectedEntity() ecs.Entity {
	return eb.selectedEntity
}

func (eb *EntityBrowserComponent) rebuildCacheIfNeeded(scene *ecs.Scene) {
	sig := signatureOf(scene.CollectStats())
	if eb.cache.signature != sig || eb.cache.entities == nil || imgui.FrameCount()%refreshInterval == 0 {
		eb.cache.signature = sig
		eb.rebuildCache(scene)
	}
}

func (eb *EntityBrowserComponent) rebuildCache(scene *ecs.Scene) {
	eb.cache.entities = collectEntities(scene)
	eb.sortEntities()
}

// collectEntities lists every live entity with its component ids and type
// names, in slot order.
func collectEntities(scene *ecs.Scene) []EntityInfo {
	entities := make([]EntityInfo, 0, scene.Len())
	registry := scene.Registry()

	for e := range scene.View().All() {
		ids, err := scene.Components(e)
		if err != nil {
			continue
		}

		names := make([]string, len(ids))
		for i, id := range ids {
			if t, ok := registry.TypeOf(id); ok {
				names[i] = t.String()
			}
		}

		entities = append(entities, EntityInfo{
			Entity:         e,
			ComponentIDs:   ids,
			ComponentTypes: names,
		})
	}
	return entities
}

func (eb *EntityBrowserComponent) sortEntities() {
	sort.SliceStable(eb.cache.entities, func(i, j int) bool {
		a, b := eb.cache.entities[i], eb.cache.entities[j]
		if !eb.cache.sortAscending {
			a, b = b, a
		}

		var less bool

		switch eb.cache.sortColumn {
		case 1:
			less = a.Entity.Generation() < b.Entity.Generation()
		case 2:
			less = strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		case 3:
			less = len(a.ComponentIDs) < len(b.ComponentIDs)
		default:
			less = a.Entity.Index() < b.Entity.Index()
		}
		return less
	})
}

func (eb *EntityBrowserComponent) filteredEntities() []EntityInfo {
	return filterEntities(eb.cache.entities, eb.filterText, eb.filterPool)
}

func filterEntities(entities []EntityInfo, text string, pool *ecs.ComponentID) []EntityInfo {
	if text == "" && pool == nil {
		return entities
	}

	filtered := make([]EntityInfo, 0, len(entities))
	filterLower := strings.ToLower(text)

	for _, entity := range entities {
		if pool != nil && !slices.Contains(entity.ComponentIDs, *pool) {
			continue
		}

		if text != "" {
			idStr := fmt.Sprintf("%d", entity.Entity.Index())
			componentsStr := strings.ToLower(strings.Join(entity.ComponentTypes, " "))

			if !strings.Contains(idStr, filterLower) && !strings.Contains(componentsStr, filterLower) {
				continue
			}
		}

		filtered = append(filtered, entity)
	}

	return filtered
}
