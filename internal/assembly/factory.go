package assembly

import (
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/pkg/clock"
)

// ForArchetype returns the strategy suited to an archetype and chassis
func ForArchetype(archetype robot.Archetype, chassis robot.ChassisType, clk clock.Clock) Strategy {
	return &pipeline{policy: PolicyForArchetype(archetype, chassis), clock: orReal(clk)}
}

// ByName returns the strategy with the given policy name
func ByName(name string, clk clock.Clock) (Strategy, error) {
	policy, err := PolicyByName(name)
	if err != nil {
		return nil, err
	}
	return &pipeline{policy: policy, clock: orReal(clk)}, nil
}

func orReal(clk clock.Clock) clock.Clock {
	if clk == nil {
		return clock.New()
	}
	return clk
}
