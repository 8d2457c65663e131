// Package workshop runs robot assemblies on behalf of callers: it turns
// records into parts, guards each robot against concurrent builds, runs
// the chosen strategy and keeps the history.
package workshop

//go:generate mockgen -destination=mock/mock_service.go -package=workshopmock github.com/KirkDiggler/robot-forge/internal/orchestrators/workshop Service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/robot-forge/internal/assembly"
	"github.com/KirkDiggler/robot-forge/internal/chips"
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/errors"
	"github.com/KirkDiggler/robot-forge/internal/parts"
	"github.com/KirkDiggler/robot-forge/internal/pkg/clock"
	"github.com/KirkDiggler/robot-forge/internal/pkg/idgen"
	assemblylocks "github.com/KirkDiggler/robot-forge/internal/repositories/assembly_locks"
	assemblyresults "github.com/KirkDiggler/robot-forge/internal/repositories/assembly_results"
	"github.com/KirkDiggler/robot-forge/internal/skeletons"
)

const (
	// DefaultLockTTL bounds how long a crashed assembly can block its robot
	DefaultLockTTL = 30 * time.Second

	// DefaultBatchLimit is how many robots a batch assembles at once
	DefaultBatchLimit = 4
)

// Service defines the workshop operations
type Service interface {
	Assemble(ctx context.Context, input *AssembleInput) (*AssembleOutput, error)
	AssembleBatch(ctx context.Context, input *AssembleBatchInput) (*AssembleBatchOutput, error)

	ValidateLoadout(ctx context.Context, input *ValidateLoadoutInput) (*ValidateLoadoutOutput, error)

	GetAssembly(ctx context.Context, input *GetAssemblyInput) (*GetAssemblyOutput, error)
	ListAssemblies(ctx context.Context, input *ListAssembliesInput) (*ListAssembliesOutput, error)
}

// Config holds the dependencies for the workshop orchestrator
type Config struct {
	Results     assemblyresults.Repository
	Locks       assemblylocks.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock

	LockTTL         time.Duration
	BatchLimit      int
	DefaultStrategy string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Results == nil {
		vb.RequiredField("Results")
	}
	if c.Locks == nil {
		vb.RequiredField("Locks")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.LockTTL < 0 {
		vb.Field("LockTTL", "cannot be negative")
	}
	if c.BatchLimit < 0 {
		vb.Field("BatchLimit", "cannot be negative")
	}
	if c.DefaultStrategy != "" {
		if _, err := assembly.PolicyByName(c.DefaultStrategy); err != nil {
			vb.Fieldf("DefaultStrategy", "unknown strategy %q", c.DefaultStrategy)
		}
	}

	return vb.Build()
}

type orchestrator struct {
	results         assemblyresults.Repository
	locks           assemblylocks.Repository
	idGen           idgen.Generator
	clock           clock.Clock
	lockTTL         time.Duration
	batchLimit      int
	defaultStrategy string
}

// NewOrchestrator creates a new workshop orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		results:         cfg.Results,
		locks:           cfg.Locks,
		idGen:           cfg.IDGenerator,
		clock:           cfg.Clock,
		lockTTL:         cfg.LockTTL,
		batchLimit:      cfg.BatchLimit,
		defaultStrategy: cfg.DefaultStrategy,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.lockTTL == 0 {
		o.lockTTL = DefaultLockTTL
	}
	if o.batchLimit == 0 {
		o.batchLimit = DefaultBatchLimit
	}

	return o, nil
}

// Assemble builds one robot under its lock and stores the result. A
// failed assembly is still a stored result, not an error; errors are
// reserved for bad records, a held lock and storage failures.
func (o *orchestrator) Assemble(ctx context.Context, input *AssembleInput) (*AssembleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	loadout := input.Loadout
	if loadout.RobotID == "" {
		return nil, errors.InvalidArgument("robot ID is required")
	}

	opts := assembly.DefaultOptions()
	if input.Options != nil {
		opts = *input.Options
	}

	req, err := buildRequest(loadout, opts)
	if err != nil {
		return nil, err
	}

	strategy, err := o.strategyFor(input, req)
	if err != nil {
		return nil, err
	}

	ref := robot.Ref(loadout.RobotID)
	lock, err := o.locks.Acquire(ctx, assemblylocks.AcquireInput{Entity: ref, TTL: o.lockTTL})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to lock robot %s", loadout.RobotID)
	}
	defer o.release(ctx, ref, lock.Token)

	result := strategy.Assemble(ctx, req)

	created, err := o.results.Create(context.WithoutCancel(ctx), assemblyresults.CreateInput{
		Record: o.toRecord(loadout.RobotID, result),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store assembly for robot %s", loadout.RobotID)
	}

	slog.InfoContext(ctx, "workshop assembly stored",
		"robot_id", loadout.RobotID,
		"assembly_id", created.Record.ID,
		"strategy", result.Strategy,
		"success", result.Success)

	return &AssembleOutput{Result: result, Record: created.Record}, nil
}

func (o *orchestrator) release(ctx context.Context, ref robot.Ref, token string) {
	err := o.locks.Release(context.WithoutCancel(ctx), assemblylocks.ReleaseInput{Entity: ref, Token: token})
	if err != nil {
		slog.WarnContext(ctx, "failed to release assembly lock",
			"robot_id", ref.GetID(),
			"error", err)
	}
}

func (o *orchestrator) strategyFor(input *AssembleInput, req *assembly.Request) (assembly.Strategy, error) {
	name := input.Strategy
	if name == "" {
		name = input.Loadout.Strategy
	}
	if name == "" {
		name = o.defaultStrategy
	}
	if name != "" {
		return assembly.ByName(name, o.clock)
	}
	return assembly.ForArchetype(req.Archetype, req.Chassis.Type(), o.clock), nil
}

func buildRequest(loadout robot.Loadout, opts assembly.Options) (*assembly.Request, error) {
	chassis, err := skeletons.FromRecord(loadout.Chassis)
	if err != nil {
		return nil, errors.Wrap(err, "invalid chassis")
	}
	ps, err := parts.FromRecords(loadout.Parts)
	if err != nil {
		return nil, errors.Wrap(err, "invalid parts")
	}
	cs, err := chips.FromRecords(loadout.Chips)
	if err != nil {
		return nil, errors.Wrap(err, "invalid chips")
	}

	return &assembly.Request{
		RobotID:    loadout.RobotID,
		RobotName:  loadout.RobotName,
		Archetype:  loadout.Archetype,
		Chassis:    chassis,
		Parts:      ps,
		Chips:      cs,
		SoulChipID: loadout.SoulChipID,
		Options:    opts,
	}, nil
}

func (o *orchestrator) toRecord(robotID string, result *assembly.Result) *assemblyresults.AssemblyRecord {
	return &assemblyresults.AssemblyRecord{
		ID:              o.idGen.Generate(),
		RobotID:         robotID,
		Strategy:        result.Strategy,
		Success:         result.Success,
		Failure:         string(result.Failure),
		Robot:           result.Robot,
		Errors:          result.Errors,
		Warnings:        result.Warnings,
		Recommendations: result.Recommendations,
		Optimizations:   result.Optimizations,
		AssemblyTimeMs:  result.AssemblyTimeMs,
		CreatedAt:       o.clock.Now(),
	}
}

// AssembleBatch assembles distinct robots in parallel. The first error
// cancels the jobs still running.
func (o *orchestrator) AssembleBatch(ctx context.Context, input *AssembleBatchInput) (*AssembleBatchOutput, error) {
	if input == nil || len(input.Jobs) == 0 {
		return nil, errors.InvalidArgument("at least one job is required")
	}

	seen := make(map[string]struct{}, len(input.Jobs))
	for i, job := range input.Jobs {
		if job == nil {
			return nil, errors.InvalidArgumentf("job %d is nil", i)
		}
		id := job.Loadout.RobotID
		if _, dup := seen[id]; dup {
			return nil, errors.InvalidArgumentf("robot %s appears more than once in batch", id)
		}
		seen[id] = struct{}{}
	}

	outputs := make([]*AssembleOutput, len(input.Jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.batchLimit)

	for i, job := range input.Jobs {
		g.Go(func() error {
			out, err := o.Assemble(gctx, job)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "workshop batch complete", "jobs", len(outputs))

	return &AssembleBatchOutput{Outputs: outputs}, nil
}

// ValidateLoadout checks a set of part records without assembling them
func (o *orchestrator) ValidateLoadout(ctx context.Context, input *ValidateLoadoutInput) (*ValidateLoadoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ps, err := parts.FromRecords(input.Parts)
	if err != nil {
		return nil, errors.Wrap(err, "invalid parts")
	}

	summaries := make([]PartSummary, 0, len(ps))
	for _, p := range ps {
		summaries = append(summaries, PartSummary{
			ID:               p.ID(),
			Name:             p.Name(),
			Category:         string(p.Category()),
			PerformanceScore: p.PerformanceScore(),
			Capabilities:     p.Capabilities().EnabledNames(),
		})
	}

	report := parts.ValidateConfiguration(ps)

	slog.DebugContext(ctx, "validated loadout",
		"parts", len(ps),
		"balanced", report.IsBalanced,
		"conflicts", len(report.Conflicts))

	return &ValidateLoadoutOutput{Report: report, Parts: summaries}, nil
}

// GetAssembly returns one stored assembly
func (o *orchestrator) GetAssembly(ctx context.Context, input *GetAssemblyInput) (*GetAssemblyOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("assembly ID is required")
	}

	out, err := o.results.Get(ctx, assemblyresults.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get assembly %s", input.ID)
	}

	return &GetAssemblyOutput{Record: out.Record}, nil
}

// ListAssemblies returns a robot's assembly history
func (o *orchestrator) ListAssemblies(ctx context.Context, input *ListAssembliesInput) (*ListAssembliesOutput, error) {
	if input == nil || input.RobotID == "" {
		return nil, errors.InvalidArgument("robot ID is required")
	}

	out, err := o.results.ListByRobot(ctx, assemblyresults.ListByRobotInput{RobotID: input.RobotID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list assemblies for robot %s", input.RobotID)
	}

	return &ListAssembliesOutput{Records: out.Records}, nil
}
