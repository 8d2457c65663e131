// Package slots is the static slot compatibility registry: which named
// slots each chassis type has and what may be mounted in each. The tables
// are built once at init and never change, so every query is safe for
// concurrent use.
package slots

import (
	"slices"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/errors"
)

// Component is anything that can occupy a slot
type Component string

// Mountable components. The part categories map one to one.
const (
	ComponentArm           Component = Component(robot.CategoryArm)
	ComponentLeg           Component = Component(robot.CategoryLeg)
	ComponentTorso         Component = Component(robot.CategoryTorso)
	ComponentHead          Component = Component(robot.CategoryHead)
	ComponentAccessory     Component = Component(robot.CategoryAccessory)
	ComponentExpansionChip Component = "EXPANSION_CHIP"
	ComponentSoulChip      Component = "SOUL_CHIP"
)

// ComponentFor maps a part category to its slot component
func ComponentFor(category robot.PartCategory) Component {
	return Component(category)
}

// SoulChipSlot is the ID of the soul chip slot every layout ends with
const SoulChipSlot = "SOUL_CHIP"

// Position is presentation-only placement of a slot on the chassis
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Definition describes one slot on a chassis
type Definition struct {
	ID       string      `json:"id"`
	Accepts  []Component `json:"accepts"`
	Required bool        `json:"required"`
	Position Position    `json:"position"`
}

// AcceptsComponent reports whether the slot takes the component
func (d Definition) AcceptsComponent(c Component) bool {
	return slices.Contains(d.Accepts, c)
}

func (d Definition) clone() Definition {
	d.Accepts = slices.Clone(d.Accepts)
	return d
}

// Layout returns the ordered slot definitions for a chassis type. The
// result is a copy and may be modified freely.
func Layout(chassis robot.ChassisType) ([]Definition, error) {
	layout, ok := layouts[chassis]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown chassis type %q", chassis)
	}

	out := make([]Definition, len(layout))
	for i, d := range layout {
		out[i] = d.clone()
	}
	return out, nil
}

// Lookup returns the definition of one slot on a chassis
func Lookup(chassis robot.ChassisType, slotID string) (Definition, error) {
	layout, ok := layouts[chassis]
	if !ok {
		return Definition{}, errors.InvalidArgumentf("unknown chassis type %q", chassis)
	}

	for _, d := range layout {
		if d.ID == slotID {
			return d.clone(), nil
		}
	}
	return Definition{}, errors.NotFoundf("slot %s not found on %s chassis", slotID, chassis)
}

// Accepts reports whether the named slot on a chassis takes the component.
// Unknown chassis types and slots accept nothing.
func Accepts(chassis robot.ChassisType, slotID string, c Component) bool {
	for _, d := range layouts[chassis] {
		if d.ID == slotID {
			return d.AcceptsComponent(c)
		}
	}
	return false
}

// RequiredSlots returns the IDs of the slots a chassis must have filled
func RequiredSlots(chassis robot.ChassisType) ([]string, error) {
	layout, ok := layouts[chassis]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown chassis type %q", chassis)
	}

	var ids []string
	for _, d := range layout {
		if d.Required {
			ids = append(ids, d.ID)
		}
	}
	return ids, nil
}
