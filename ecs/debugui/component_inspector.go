package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sparsecs/ecs"
)

func NewComponentInspectorComponent() ComponentInspectorComponent {
	return ComponentInspectorComponent{selectedEntity: ecs.Invalid}
}

func (ci *ComponentInspectorComponent) Render(scene *ecs.Scene, selected ecs.Entity) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ci.selectedEntity = selected

	if !ci.selectedEntity.IsValid() {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	ids, err := scene.Components(ci.selectedEntity)
	if err != nil {
		imgui.Text(fmt.Sprintf("%s no longer exists", ci.selectedEntity))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %d", ci.selectedEntity.Index()))
	imgui.Text(fmt.Sprintf("Generation: %d", ci.selectedEntity.Generation()))
	imgui.Separator()

	registry := scene.Registry()
	for _, id := range ids {
		compType, ok := registry.TypeOf(id)
		if !ok {
			continue
		}

		component, err := scene.ComponentValue(ci.selectedEntity, id)
		if err != nil || component == nil {
			continue
		}

		if imgui.TreeNodeStr(compType.String()) {
			renderComponent(component)
			imgui.TreePop()
		}
	}

	imgui.End()
}

// renderComponent draws editors for a component. component is the pointer
// returned by Scene.ComponentValue, so edits write straight into the pool.
func renderComponent(component any) {
	val := reflect.ValueOf(component)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		renderValue("value", val)
		return
	}

	for _, field := range globalReflectionCache.Fields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		renderValue(field.Name, fieldVal)
	}
}

func renderValue(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		inputLabel(name)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) {
			setValue(val, int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		inputLabel(name)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 {
			setValue(val, uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		inputLabel(name)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) {
			setValue(val, float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) {
			setValue(val, v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) {
			setValue(val, v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			for _, nf := range globalReflectionCache.Fields(val.Type()) {
				nestedVal := val.Field(nf.Index)
				if nf.IsPointer && !nestedVal.IsNil() {
					nestedVal = nestedVal.Elem()
				}
				renderValue(nf.Name, nestedVal)
			}
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	case reflect.Func:
		imgui.Text(fmt.Sprintf("%s: func", name))

	default:
		if val.CanInterface() {
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
		} else {
			imgui.Text(fmt.Sprintf("%s: <%s>", name, val.Kind()))
		}
	}
}

func inputLabel(name string) {
	imgui.Text(fmt.Sprintf("%s:", name))
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
}

// setValue writes v into the addressable value dst, converting between the
// widths of the same kind. It reports whether the write happened.
func setValue(dst reflect.Value, v any) bool {
	if !dst.CanSet() {
		return false
	}

	switch x := v.(type) {
	case int64:
		if dst.OverflowInt(x) {
			return false
		}
		dst.SetInt(x)
	case uint64:
		if dst.OverflowUint(x) {
			return false
		}
		dst.SetUint(x)
	case float64:
		dst.SetFloat(x)
	case bool:
		dst.SetBool(x)
	case string:
		dst.SetString(x)
	default:
		return false
	}
	return true
}
