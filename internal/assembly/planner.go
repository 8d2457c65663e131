package assembly

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/robot-forge/internal/chips"
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/parts"
	"github.com/KirkDiggler/robot-forge/internal/slots"
)

// Unassigned reasons
const (
	ReasonCapacityReached = "chassis capacity reached"
	ReasonNoCompatible    = "no free compatible slot"
)

func buildPlan(req *Request, policy Policy) (*Plan, error) {
	layout, err := slots.Layout(req.Chassis.Type())
	if err != nil {
		return nil, err
	}

	plan := &Plan{Chassis: req.Chassis}
	plan.Assignment = assignParts(layout, req.Chassis.Slots(), policy.Order(req.Parts), req.Options.AllowSubstitution)
	plan.Chips, plan.Warnings = assignChips(layout, req.Chips)
	plan.Steps = planSteps(policy.Timings(), plan.Assignment.Assigned, len(plan.Chips))
	for _, step := range plan.Steps {
		plan.EstimatedDuration += step.Duration
	}
	plan.Checks = compatibilityChecks(req, layout, plan)

	return plan, nil
}

// assignParts walks the ordered parts and gives each the first free slot
// that accepts its category, until capacity parts are placed.
func assignParts(layout []slots.Definition, capacity int, ordered []*parts.Part, allowSubstitution bool) PartAssignmentResult {
	var result PartAssignmentResult
	taken := make(map[string]bool, len(layout))

	for _, p := range ordered {
		reason := ReasonCapacityReached
		if len(result.Assigned) < capacity {
			if slotID, ok := firstFreeSlot(layout, taken, slots.ComponentFor(p.Category())); ok {
				taken[slotID] = true
				result.Assigned = append(result.Assigned, Assignment{SlotID: slotID, Part: p})
				continue
			}
			reason = ReasonNoCompatible
		}

		if allowSubstitution && substitute(&result, p) {
			continue
		}
		result.Unassigned = append(result.Unassigned, Unassigned{Part: p, Reason: reason})
	}

	return result
}

func firstFreeSlot(layout []slots.Definition, taken map[string]bool, c slots.Component) (string, bool) {
	for _, def := range layout {
		if !taken[def.ID] && def.AcceptsComponent(c) {
			return def.ID, true
		}
	}
	return "", false
}

// substitute swaps candidate in for the lowest ranked placed part of the
// same category, provided that part ranks strictly lower.
func substitute(result *PartAssignmentResult, candidate *parts.Part) bool {
	victim := -1
	for i, a := range result.Assigned {
		if a.Part.Category() != candidate.Category() {
			continue
		}
		if a.Part.Rarity().Rank() >= candidate.Rarity().Rank() {
			continue
		}
		if victim < 0 || a.Part.Rarity().Rank() < result.Assigned[victim].Part.Rarity().Rank() {
			victim = i
		}
	}
	if victim < 0 {
		return false
	}

	removed := result.Assigned[victim]
	result.Assigned[victim] = Assignment{SlotID: removed.SlotID, Part: candidate}
	result.Substitutions = append(result.Substitutions, Substitution{
		SlotID:    removed.SlotID,
		Removed:   removed.Part,
		Installed: candidate,
		Reason: fmt.Sprintf("%s %s outranks %s", candidate.Rarity(), candidate.ID(),
			removed.Part.Rarity()),
	})
	result.Unassigned = append(result.Unassigned, Unassigned{
		Part:   removed.Part,
		Reason: "replaced by " + candidate.ID(),
	})
	return true
}

func assignChips(layout []slots.Definition, candidates []*chips.Chip) ([]ChipAssignment, []string) {
	var (
		assigned []ChipAssignment
		warnings []string
	)
	taken := make(map[string]bool)

	for _, c := range candidates {
		slotID, ok := firstFreeSlot(layout, taken, slots.ComponentExpansionChip)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("No free expansion slot for chip %s", c.ID()))
			continue
		}
		taken[slotID] = true
		assigned = append(assigned, ChipAssignment{SlotID: slotID, Chip: c})
	}

	for i := 0; i < len(assigned); i++ {
		for j := i + 1; j < len(assigned); j++ {
			a, b := assigned[i].Chip, assigned[j].Chip
			if !a.IsCompatibleWith(b) {
				warnings = append(warnings, fmt.Sprintf("Incompatible chips: %s and %s", a.Name(), b.Name()))
			}
		}
	}

	return assigned, warnings
}

// Step names
const (
	StepMountChassis     = "Mount chassis"
	StepInstallCore      = "Install core parts"
	StepInstallLimbs     = "Install limbs"
	StepInstallAccessory = "Install accessories"
	StepInstallChips     = "Install expansion chips"
	StepFinalCalibration = "Final calibration"
)

func planSteps(t StepTimings, assigned []Assignment, chipCount int) []Step {
	var core, limbs, accessories int
	for _, a := range assigned {
		switch a.Part.Category() {
		case robot.CategoryHead, robot.CategoryTorso:
			core++
		case robot.CategoryArm, robot.CategoryLeg:
			limbs++
		case robot.CategoryAccessory:
			accessories++
		}
	}

	steps := []Step{
		{Name: StepMountChassis, Duration: t.MountChassis},
		{Name: StepInstallCore, Duration: t.PerCorePart * durationCount(core)},
		{Name: StepInstallLimbs, Duration: t.PerLimb * durationCount(limbs)},
		{Name: StepInstallAccessory, Duration: t.PerAccessory * durationCount(accessories)},
		{Name: StepInstallChips, Duration: t.PerChip * durationCount(chipCount)},
		{Name: StepFinalCalibration, Duration: t.FinalCalibrate},
	}
	for i := 1; i < len(steps); i++ {
		steps[i].DependsOn = []int{i - 1}
	}
	return steps
}

func durationCount(n int) time.Duration {
	return time.Duration(n)
}

func compatibilityChecks(req *Request, layout []slots.Definition, plan *Plan) []CompatibilityCheck {
	chassis := req.Chassis.Type()
	filled := make(map[string]bool)
	var checks []CompatibilityCheck

	for _, a := range plan.Assignment.Assigned {
		filled[a.SlotID] = true
		ok := slots.Accepts(chassis, a.SlotID, slots.ComponentFor(a.Part.Category()))
		check := CompatibilityCheck{SlotID: a.SlotID, ItemID: a.Part.ID(), Passed: ok}
		if !ok {
			check.Message = fmt.Sprintf("Slot %s does not accept %s", a.SlotID, a.Part.Category())
		}
		checks = append(checks, check)
	}
	for _, c := range plan.Chips {
		filled[c.SlotID] = true
		checks = append(checks, CompatibilityCheck{
			SlotID: c.SlotID,
			ItemID: c.Chip.ID(),
			Passed: slots.Accepts(chassis, c.SlotID, slots.ComponentExpansionChip),
		})
	}
	if strings.TrimSpace(req.SoulChipID) != "" {
		filled[slots.SoulChipSlot] = true
	}

	for _, def := range layout {
		if def.Required && !filled[def.ID] {
			checks = append(checks, CompatibilityCheck{
				SlotID:  def.ID,
				Passed:  false,
				Message: fmt.Sprintf("Required slot %s is empty", def.ID),
			})
		}
	}

	return checks
}
