package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tileswap/ecs"
)

// ComponentLine is one row of the inspector: a component and its fields
// formatted as "Name: value".
type ComponentLine struct {
	Component string
	Fields    []string
}

// DescribeEntity formats every component of id. Types without exported
// fields (tags) get an empty field list.
func DescribeEntity(storage *ecs.Storage, id ecs.EntityId) []ComponentLine {
	var lines []ComponentLine
	for _, compType := range storage.ComponentTypes(id) {
		component := storage.GetComponent(id, compType)
		if component == nil {
			continue
		}

		val := reflect.ValueOf(component).Elem()
		line := ComponentLine{Component: compType.Name()}
		for _, field := range globalReflectionCache.GetFields(compType) {
			fieldVal := val.Field(field.Index)
			if field.IsPointer && fieldVal.IsNil() {
				line.Fields = append(line.Fields, field.Name+": nil")
				continue
			}
			line.Fields = append(line.Fields, fmt.Sprintf("%s: %v", field.Name, fieldVal.Interface()))
		}
		lines = append(lines, line)
	}
	return lines
}

// RenderEntity draws a read-only tree of the entity's components into the
// current ImGui window.
func RenderEntity(storage *ecs.Storage, id ecs.EntityId) {
	lines := DescribeEntity(storage, id)
	if len(lines) == 0 {
		imgui.TextUnformatted(fmt.Sprintf("Entity %d not found", id))
		return
	}

	imgui.TextUnformatted(fmt.Sprintf("Entity 0x%X", uint64(id)))
	for _, line := range lines {
		if len(line.Fields) == 0 {
			imgui.BulletText(line.Component)
			continue
		}
		if imgui.TreeNodeStr(line.Component) {
			for _, field := range line.Fields {
				imgui.TextUnformatted(field)
			}
			imgui.TreePop()
		}
	}
}
