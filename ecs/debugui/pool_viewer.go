package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sparsecs/ecs"
)

type PoolViewerCache struct {
	pools         []ecs.PoolStats
	sortColumn    int
	sortAscending bool
}

func NewPoolViewerComponent() PoolViewerComponent {
	return PoolViewerComponent{
		cache: &PoolViewerCache{
			sortColumn:    2,
			sortAscending: false,
		},
		sortColumn:    2,
		sortAscending: false,
	}
}

// Render draws the pool table and returns the component id of a pool the user
// clicked this frame, or nil.
func (pv *PoolViewerComponent) Render(scene *ecs.Scene) *ecs.ComponentID {
	if !imgui.BeginV("Pool Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return nil
	}

	pv.cache.pools = scene.CollectStats().Pools
	pv.sortPools()

	maxLen := 0
	for _, pool := range pv.cache.pools {
		maxLen = max(maxLen, pool.Len)
	}

	var clicked *ecs.ComponentID

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("PoolTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Component")
		imgui.TableSetupColumn("Values")
		imgui.TableSetupColumn("Free")
		imgui.TableSetupColumn("Capacity")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			pv.cache.sortColumn = int(spec.ColumnIndex())
			pv.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			pv.sortColumn = pv.cache.sortColumn
			pv.sortAscending = pv.cache.sortAscending
			pv.sortPools()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, pool := range pv.cache.pools {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := pv.selectedPoolID != nil && *pv.selectedPoolID == pool.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", pool.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				id := pool.ID
				clicked = &id
				pv.selectedPoolID = &id
			}

			imgui.TableNextColumn()
			imgui.Text(pool.Type)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", pool.Len))

			if maxLen > 0 {
				barWidth := float32(pool.Len) / float32(maxLen) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", pool.Free))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", pool.Capacity))
		}

		imgui.EndTable()
	}

	imgui.End()
	return clicked
}

func (pv *PoolViewerComponent) sortPools() {
	sortPoolStats(pv.cache.pools, pv.cache.sortColumn, pv.cache.sortAscending)
}

func sortPoolStats(pools []ecs.PoolStats, column int, ascending bool) {
	sort.SliceStable(pools, func(i, j int) bool {
		a, b := pools[i], pools[j]
		if !ascending {
			a, b = b, a
		}

		var less bool

		switch column {
		case 0:
			less = a.ID < b.ID
		case 1:
			less = a.Type < b.Type
		case 3:
			less = a.Free < b.Free
		case 4:
			less = a.Capacity < b.Capacity
		default:
			less = a.Len < b.Len
		}
		return less
	})
}
