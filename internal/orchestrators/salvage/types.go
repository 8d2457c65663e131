package salvage

import (
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
)

// GenerateInput defines a salvage haul
type GenerateInput struct {
	Count int
	// Category pins every part to one category; empty rolls per part
	Category robot.PartCategory
}

// GenerateOutput holds the salvaged part records, ready for the factory
type GenerateOutput struct {
	Parts []robot.PartRecord
}
