package assembly

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/errors"
	"github.com/KirkDiggler/robot-forge/internal/pkg/clock"
)

// Validation messages
const (
	ErrMsgRequestRequired = "Assembly request is required"
	ErrMsgChassisRequired = "Chassis is required"
	ErrMsgPartsRequired   = "At least one part is required"
)

// Strategy assembles robots under one policy
type Strategy interface {
	Name() string
	Assemble(ctx context.Context, req *Request) *Result
}

// Config wires a Strategy
type Config struct {
	Policy Policy
	Clock  clock.Clock
}

// Validate checks the config is complete
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Policy == nil {
		vb.RequiredField("Policy")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type pipeline struct {
	policy Policy
	clock  clock.Clock
}

// New creates a Strategy from config
func New(cfg *Config) (Strategy, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid assembly config")
	}

	return &pipeline{policy: cfg.Policy, clock: cfg.Clock}, nil
}

func (p *pipeline) Name() string {
	return p.policy.Name()
}

// Assemble runs the five stages, checking ctx before each one
func (p *pipeline) Assemble(ctx context.Context, req *Request) (result *Result) {
	start := p.clock.Now()
	result = &Result{Strategy: p.policy.Name()}

	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "assembly panicked",
				"strategy", p.policy.Name(),
				"panic", fmt.Sprint(r))
			result = fail(result, FailureInternal, fmt.Sprintf("Assembly failed: %v", r))
		}
		result.AssemblyTime = clock.Since(p.clock, start)
		result.AssemblyTimeMs = result.AssemblyTime.Milliseconds()
		p.logOutcome(ctx, req, result)
	}()

	if req != nil && req.Options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Options.Timeout)
		defer cancel()
	}

	if res := interrupted(ctx, result); res != nil {
		return res
	}
	if errs := validate(req); len(errs) > 0 {
		result.Errors = errs
		result.Failure = FailureValidation
		return result
	}

	if res := interrupted(ctx, result); res != nil {
		return res
	}
	plan, err := buildPlan(req, p.policy)
	if err != nil {
		return fail(result, FailureInternal, fmt.Sprintf("Assembly failed: %v", err))
	}
	result.Plan = plan

	if res := interrupted(ctx, result); res != nil {
		return res
	}
	built := execute(req, plan)

	if res := interrupted(ctx, result); res != nil {
		return res
	}
	installed := optimize(req.Options, built, plan, result)

	if res := interrupted(ctx, result); res != nil {
		return res
	}
	finalize(req, p.policy.Weights(), built, installed, plan, result)

	return result
}

func validate(req *Request) []string {
	if req == nil {
		return []string{ErrMsgRequestRequired}
	}

	var errs []string
	if req.Chassis == nil {
		errs = append(errs, ErrMsgChassisRequired)
	}
	if len(req.Parts) == 0 {
		errs = append(errs, ErrMsgPartsRequired)
	}
	if req.Chassis != nil && len(req.Parts) > req.Chassis.Slots() && !req.Options.AllowSubstitution {
		errs = append(errs, fmt.Sprintf("Too many parts (%d) for chassis capacity (%d)",
			len(req.Parts), req.Chassis.Slots()))
	}
	return errs
}

func interrupted(ctx context.Context, result *Result) *Result {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fail(result, FailureTimeout, "Assembly timed out")
	}
	return fail(result, FailureCanceled, "Assembly canceled")
}

func fail(result *Result, kind FailureKind, message string) *Result {
	result.Success = false
	result.Robot = nil
	result.Failure = kind
	result.Errors = append(result.Errors, message)
	return result
}

func execute(req *Request, plan *Plan) *robot.Robot {
	built := &robot.Robot{
		ID:         req.RobotID,
		Name:       req.RobotName,
		Archetype:  req.Archetype,
		Chassis:    req.Chassis.ToRecord(),
		SoulChipID: req.SoulChipID,
		Parts:      make([]robot.InstalledPart, 0, len(plan.Assignment.Assigned)),
	}

	for _, a := range plan.Assignment.Assigned {
		built.Parts = append(built.Parts, robot.InstalledPart{SlotID: a.SlotID, Part: a.Part.ToRecord()})
	}
	for _, c := range plan.Chips {
		built.Chips = append(built.Chips, robot.InstalledChip{SlotID: c.SlotID, Chip: c.Chip.ToRecord()})
	}

	return built
}

func (p *pipeline) logOutcome(ctx context.Context, req *Request, result *Result) {
	robotID := ""
	if req != nil {
		robotID = req.RobotID
	}

	if !result.Success {
		slog.WarnContext(ctx, "assembly failed",
			"robot_id", robotID,
			"strategy", result.Strategy,
			"failure", string(result.Failure),
			"errors", result.Errors,
			"duration", result.AssemblyTime)
		return
	}

	slog.InfoContext(ctx, "assembly completed",
		"robot_id", robotID,
		"strategy", result.Strategy,
		"parts", len(result.Robot.Parts),
		"rating", result.Robot.Rating,
		"warnings", len(result.Warnings),
		"duration", result.AssemblyTime)
}
