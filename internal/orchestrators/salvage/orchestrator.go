// Package salvage generates random part records, the loot a robot brings
// back from the scrapyard.
package salvage

//go:generate mockgen -destination=mock/mock_service.go -package=salvagemock github.com/KirkDiggler/robot-forge/internal/orchestrators/salvage Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/errors"
	"github.com/KirkDiggler/robot-forge/internal/pkg/idgen"
)

const (
	// MaxCount caps a single haul
	MaxCount = 50

	statDice   = 3
	statDie    = 6
	energyDice = 2
	energyDie  = 6
)

// Service defines the salvage operations
type Service interface {
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// Config holds the dependencies for the salvage orchestrator
type Config struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	roller dice.Roller
	idGen  idgen.Generator
}

// NewOrchestrator creates a new salvage orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		roller: cfg.Roller,
		idGen:  cfg.IDGenerator,
	}, nil
}

// Generate rolls Count fresh part records at upgrade level 0
func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("count", input.Count, 1, MaxCount, vb)
	if input.Category != "" && !input.Category.IsValid() {
		vb.Fieldf("category", "unknown part category %q", input.Category)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out := make([]robot.PartRecord, 0, input.Count)
	for i := 0; i < input.Count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.FromContext(err, "salvage interrupted")
		}

		rec, err := o.rollPart(input.Category)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	slog.InfoContext(ctx, "salvage generated",
		"count", len(out),
		"category", string(input.Category))

	return &GenerateOutput{Parts: out}, nil
}

func (o *orchestrator) rollPart(category robot.PartCategory) (robot.PartRecord, error) {
	rarityRoll, err := o.roller.Roll(100)
	if err != nil {
		return robot.PartRecord{}, errors.Wrap(err, "failed to roll rarity")
	}
	rarity := rarityFor(rarityRoll)

	if category == "" {
		all := robot.AllPartCategories()
		n, err := o.roller.Roll(len(all))
		if err != nil {
			return robot.PartRecord{}, errors.Wrap(err, "failed to roll category")
		}
		category = all[n-1]
	}
	entry := catalog[category]

	stats, err := o.rollStats(entry.weights)
	if err != nil {
		return robot.PartRecord{}, err
	}

	nameRoll, err := o.roller.Roll(len(entry.names))
	if err != nil {
		return robot.PartRecord{}, errors.Wrap(err, "failed to roll name")
	}
	abilityRoll, err := o.roller.Roll(len(entry.abilities))
	if err != nil {
		return robot.PartRecord{}, errors.Wrap(err, "failed to roll ability")
	}

	return robot.PartRecord{
		ID:        o.idGen.Generate(),
		Category:  category,
		Rarity:    rarity,
		Name:      fmt.Sprintf("%s %s", rarity.Title(), entry.names[nameRoll-1]),
		Stats:     stats,
		Abilities: []robot.Ability{entry.abilities[abilityRoll-1]},
	}, nil
}

func (o *orchestrator) rollStats(w statWeights) (robot.Stats, error) {
	var stats robot.Stats
	targets := []struct {
		dst    *int
		weight int
	}{
		{&stats.Attack, w.attack},
		{&stats.Defense, w.defense},
		{&stats.Speed, w.speed},
		{&stats.Perception, w.perception},
	}

	for _, t := range targets {
		total, err := o.sum(statDice, statDie)
		if err != nil {
			return robot.Stats{}, errors.Wrap(err, "failed to roll stats")
		}
		*t.dst = total * t.weight
	}

	energy, err := o.sum(energyDice, energyDie)
	if err != nil {
		return robot.Stats{}, errors.Wrap(err, "failed to roll energy")
	}
	stats.EnergyConsumption = energy

	return stats, nil
}

func (o *orchestrator) sum(count, size int) (int, error) {
	rolls, err := o.roller.RollN(count, size)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range rolls {
		total += r
	}
	return total, nil
}
