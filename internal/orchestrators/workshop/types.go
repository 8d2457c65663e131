package workshop

import (
	"github.com/KirkDiggler/robot-forge/internal/assembly"
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/parts"
	assemblyresults "github.com/KirkDiggler/robot-forge/internal/repositories/assembly_results"
)

// AssembleInput defines the request for assembling one robot
type AssembleInput struct {
	Loadout robot.Loadout
	// Strategy overrides both the loadout's strategy and the archetype default
	Strategy string
	// Options tunes the run; nil means assembly.DefaultOptions
	Options *assembly.Options
}

// AssembleOutput defines the response for assembling one robot
type AssembleOutput struct {
	Result *assembly.Result
	Record *assemblyresults.AssemblyRecord
}

// AssembleBatchInput defines a set of robots to assemble together
type AssembleBatchInput struct {
	Jobs []*AssembleInput
}

// AssembleBatchOutput holds one output per job, in job order
type AssembleBatchOutput struct {
	Outputs []*AssembleOutput
}

// ValidateLoadoutInput defines the parts to check
type ValidateLoadoutInput struct {
	Parts []robot.PartRecord
}

// PartSummary describes one validated part
type PartSummary struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Category         string   `json:"category" yaml:"category"`
	PerformanceScore float64  `json:"performance_score" yaml:"performance_score"`
	Capabilities     []string `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
}

// ValidateLoadoutOutput defines the configuration analysis
type ValidateLoadoutOutput struct {
	Report *parts.ConfigurationReport
	Parts  []PartSummary
}

// GetAssemblyInput defines the request for a stored assembly
type GetAssemblyInput struct {
	ID string
}

// GetAssemblyOutput defines the response for a stored assembly
type GetAssemblyOutput struct {
	Record *assemblyresults.AssemblyRecord
}

// ListAssembliesInput defines the request for a robot's history
type ListAssembliesInput struct {
	RobotID string
}

// ListAssembliesOutput defines a robot's assembly history, oldest first
type ListAssembliesOutput struct {
	Records []*assemblyresults.AssemblyRecord
}
