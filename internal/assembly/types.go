package assembly

import (
	"time"

	"github.com/KirkDiggler/robot-forge/internal/chips"
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/parts"
	"github.com/KirkDiggler/robot-forge/internal/skeletons"
)

// FailureKind classifies why an assembly did not succeed
type FailureKind string

// Failure kinds
const (
	FailureNone       FailureKind = ""
	FailureValidation FailureKind = "VALIDATION"
	FailureCanceled   FailureKind = "CANCELED"
	FailureTimeout    FailureKind = "TIMEOUT"
	FailureInternal   FailureKind = "INTERNAL"
)

// Options toggles optional pipeline behaviour
type Options struct {
	AllowSubstitution   bool
	OptimizePerformance bool
	OptimizeCost        bool
	// Timeout bounds the whole run; zero means no bound beyond ctx.
	Timeout time.Duration
}

// DefaultOptions allows substitution and nothing else
func DefaultOptions() Options {
	return Options{AllowSubstitution: true}
}

// Request is one assembly job
type Request struct {
	RobotID    string
	RobotName  string
	Archetype  robot.Archetype
	Chassis    *skeletons.Skeleton
	Parts      []*parts.Part
	Chips      []*chips.Chip
	SoulChipID string
	Options    Options
}

// Assignment places a part in a slot
type Assignment struct {
	SlotID string
	Part   *parts.Part
}

// ChipAssignment places a chip in an expansion slot
type ChipAssignment struct {
	SlotID string
	Chip   *chips.Chip
}

// Unassigned is a part the planner could not place
type Unassigned struct {
	Part   *parts.Part
	Reason string
}

// Substitution records a better part displacing an already placed one
type Substitution struct {
	SlotID    string
	Removed   *parts.Part
	Installed *parts.Part
	Reason    string
}

// PartAssignmentResult is the outcome of slot filling
type PartAssignmentResult struct {
	Assigned      []Assignment
	Unassigned    []Unassigned
	Substitutions []Substitution
}

// Step is one timed stage of physical assembly
type Step struct {
	Name      string        `json:"name" yaml:"name"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	DependsOn []int         `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
}

// CompatibilityCheck is one slot/item verification made while planning
type CompatibilityCheck struct {
	SlotID  string `json:"slot_id" yaml:"slot_id"`
	ItemID  string `json:"item_id,omitempty" yaml:"item_id,omitempty"`
	Passed  bool   `json:"passed" yaml:"passed"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Plan is the full assembly plan for one request
type Plan struct {
	Chassis           *skeletons.Skeleton
	Assignment        PartAssignmentResult
	Chips             []ChipAssignment
	Steps             []Step
	EstimatedDuration time.Duration
	Checks            []CompatibilityCheck
	Warnings          []string
}

// Result is produced exactly once per Assemble call.
// AssemblyTimeMs is AssemblyTime truncated to milliseconds, the unit the
// stored record uses.
type Result struct {
	Success         bool          `json:"success" yaml:"success"`
	Strategy        string        `json:"strategy" yaml:"strategy"`
	Robot           *robot.Robot  `json:"robot,omitempty" yaml:"robot,omitempty"`
	Errors          []string      `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings        []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Recommendations []string      `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	AssemblyTime    time.Duration `json:"-" yaml:"-"`
	AssemblyTimeMs  int64         `json:"assembly_time_ms" yaml:"assembly_time_ms"`
	Optimizations   []string      `json:"optimizations,omitempty" yaml:"optimizations,omitempty"`
	Failure         FailureKind   `json:"failure,omitempty" yaml:"failure,omitempty"`
	Plan            *Plan         `json:"-" yaml:"-"`
}
