package assembly_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/robot-forge/internal/assembly"
	"github.com/KirkDiggler/robot-forge/internal/chips"
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/parts"
	"github.com/KirkDiggler/robot-forge/internal/pkg/clock"
	mockclock "github.com/KirkDiggler/robot-forge/internal/pkg/clock/mock"
	"github.com/KirkDiggler/robot-forge/internal/skeletons"
	"github.com/KirkDiggler/robot-forge/internal/testutils"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type PipelineTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
}

func (s *PipelineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
}

func (s *PipelineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PipelineTestSuite) strategy(policy assembly.Policy) assembly.Strategy {
	strategy, err := assembly.New(&assembly.Config{Policy: policy, Clock: clock.New()})
	s.Require().NoError(err)
	return strategy
}

func (s *PipelineTestSuite) part(id string, category robot.PartCategory, rarity robot.Rarity) *parts.Part {
	p, err := parts.FromRecord(testutils.PartRecord(id, category, rarity))
	s.Require().NoError(err)
	return p
}

func (s *PipelineTestSuite) chip(id string, effect robot.ChipEffect) *chips.Chip {
	c, err := chips.FromRecord(testutils.ChipRecord(id, effect, robot.RarityRare))
	s.Require().NoError(err)
	return c
}

func (s *PipelineTestSuite) chassis(chassisType robot.ChassisType, capacity int) *skeletons.Skeleton {
	sk, err := skeletons.FromRecord(testutils.SkeletonRecord("chassis-1", chassisType, capacity))
	s.Require().NoError(err)
	return sk
}

func (s *PipelineTestSuite) scenarioParts() []*parts.Part {
	return []*parts.Part{
		s.part("head-1", robot.CategoryHead, robot.RarityRare),
		s.part("torso-1", robot.CategoryTorso, robot.RarityRare),
		s.part("arm-1", robot.CategoryArm, robot.RarityCommon),
		s.part("leg-1", robot.CategoryLeg, robot.RarityCommon),
		s.part("acc-1", robot.CategoryAccessory, robot.RarityCommon),
		s.part("acc-2", robot.CategoryAccessory, robot.RarityCommon),
	}
}

func assignedIDs(plan *assembly.Plan) []string {
	var ids []string
	for _, a := range plan.Assignment.Assigned {
		ids = append(ids, a.SlotID+"="+a.Part.ID())
	}
	return ids
}

func (s *PipelineTestSuite) TestBalancedFillsByPriority() {
	// Arrange
	req := &assembly.Request{
		RobotID:    "bot-1",
		Chassis:    s.chassis(robot.ChassisLight, 4),
		Parts:      s.scenarioParts(),
		SoulChipID: "soul-1",
		Options:    assembly.DefaultOptions(),
	}

	// Act
	result := s.strategy(assembly.Balanced()).Assemble(s.ctx, req)

	// Assert
	s.Require().True(result.Success, "errors: %v", result.Errors)
	s.Equal(assembly.PolicyBalanced, result.Strategy)
	s.Equal([]string{"HEAD_1=head-1", "TORSO_1=torso-1", "ARM_LEFT_1=arm-1", "LEG_1=leg-1"},
		assignedIDs(result.Plan))

	unassigned := result.Plan.Assignment.Unassigned
	s.Require().Len(unassigned, 2)
	s.Equal("acc-1", unassigned[0].Part.ID())
	s.Equal("acc-2", unassigned[1].Part.ID())
	s.Equal(assembly.ReasonCapacityReached, unassigned[0].Reason)
	s.Empty(result.Plan.Assignment.Substitutions)

	s.Require().NotNil(result.Robot)
	s.Equal("bot-1", result.Robot.ID)
	s.Len(result.Robot.Parts, 4)
	s.Contains(result.Warnings, "Part acc-1 was not installed: chassis capacity reached")
}

func (s *PipelineTestSuite) TestBalancedStepPlan() {
	req := &assembly.Request{
		RobotID: "bot-1",
		Chassis: s.chassis(robot.ChassisLight, 4),
		Parts:   s.scenarioParts(),
		Options: assembly.DefaultOptions(),
	}

	result := s.strategy(assembly.Balanced()).Assemble(s.ctx, req)
	s.Require().True(result.Success)

	steps := result.Plan.Steps
	s.Require().Len(steps, 6)
	s.Equal(assembly.StepMountChassis, steps[0].Name)
	s.Empty(steps[0].DependsOn)
	for i := 1; i < len(steps); i++ {
		s.Equal([]int{i - 1}, steps[i].DependsOn)
	}
	s.Equal(120*time.Second, steps[0].Duration)
	s.Equal(180*time.Second, steps[1].Duration)
	s.Equal(120*time.Second, steps[2].Duration)
	s.Zero(steps[3].Duration)
	s.Zero(steps[4].Duration)
	s.Equal(180*time.Second, steps[5].Duration)
	s.Equal(600*time.Second, result.Plan.EstimatedDuration)

	s.Contains(result.Warnings, "Required slot SOUL_CHIP is empty")
}

func (s *PipelineTestSuite) TestPerformanceSkipsCommonParts() {
	req := &assembly.Request{
		RobotID:    "bot-2",
		Chassis:    s.chassis(robot.ChassisLight, 4),
		Parts:      s.scenarioParts(),
		SoulChipID: "soul-1",
		Options:    assembly.DefaultOptions(),
	}

	result := s.strategy(assembly.Performance()).Assemble(s.ctx, req)

	s.Require().True(result.Success)
	s.Equal([]string{"HEAD_1=head-1", "TORSO_1=torso-1"}, assignedIDs(result.Plan))
	s.Empty(result.Plan.Assignment.Unassigned)
	s.Less(len(result.Plan.Assignment.Assigned), req.Chassis.Slots())

	steps := result.Plan.Steps
	s.Equal(60*time.Second, steps[0].Duration)
	s.Equal(90*time.Second, steps[1].Duration)
	s.Equal(240*time.Second, result.Plan.EstimatedDuration)
	s.Contains(result.Warnings, "Required slot LEG_1 is empty")
}

func (s *PipelineTestSuite) TestPerformanceOrdersByRarity() {
	req := &assembly.Request{
		RobotID: "bot-3",
		Chassis: s.chassis(robot.ChassisModular, 16),
		Parts: []*parts.Part{
			s.part("arm-rare", robot.CategoryArm, robot.RarityRare),
			s.part("head-epic", robot.CategoryHead, robot.RarityEpic),
			s.part("arm-proto", robot.CategoryArm, robot.RarityPrototype),
			s.part("leg-rare", robot.CategoryLeg, robot.RarityRare),
		},
		Options: assembly.DefaultOptions(),
	}

	result := s.strategy(assembly.Performance()).Assemble(s.ctx, req)

	s.Require().True(result.Success)
	s.Equal([]string{"ARM_LEFT_1=arm-proto", "HEAD_1=head-epic", "ARM_LEFT_2=arm-rare", "LEG_LEFT_1=leg-rare"},
		assignedIDs(result.Plan))
}

func (s *PipelineTestSuite) TestValidationFailures() {
	testCases := []struct {
		name    string
		req     func() *assembly.Request
		wantErr string
	}{
		{
			name:    "nil request",
			req:     func() *assembly.Request { return nil },
			wantErr: assembly.ErrMsgRequestRequired,
		},
		{
			name: "missing chassis",
			req: func() *assembly.Request {
				return &assembly.Request{Parts: s.scenarioParts(), Options: assembly.DefaultOptions()}
			},
			wantErr: assembly.ErrMsgChassisRequired,
		},
		{
			name: "no parts",
			req: func() *assembly.Request {
				return &assembly.Request{Chassis: s.chassis(robot.ChassisLight, 4)}
			},
			wantErr: assembly.ErrMsgPartsRequired,
		},
		{
			name: "over capacity without substitution",
			req: func() *assembly.Request {
				return &assembly.Request{Chassis: s.chassis(robot.ChassisLight, 4), Parts: s.scenarioParts()}
			},
			wantErr: "Too many parts (6) for chassis capacity (4)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := s.strategy(assembly.Balanced()).Assemble(s.ctx, tc.req())

			s.False(result.Success)
			s.Nil(result.Robot)
			s.Equal(assembly.FailureValidation, result.Failure)
			s.Contains(result.Errors, tc.wantErr)
		})
	}
}

func (s *PipelineTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	result := s.strategy(assembly.Balanced()).Assemble(ctx, &assembly.Request{
		Chassis: s.chassis(robot.ChassisLight, 4),
		Parts:   s.scenarioParts(),
		Options: assembly.DefaultOptions(),
	})

	s.False(result.Success)
	s.Equal(assembly.FailureCanceled, result.Failure)
	s.Equal([]string{"Assembly canceled"}, result.Errors)
	s.Nil(result.Robot)
}

func (s *PipelineTestSuite) TestExpiredDeadlineIsTimeout() {
	ctx, cancel := context.WithDeadline(s.ctx, time.Now().Add(-time.Second))
	defer cancel()

	result := s.strategy(assembly.Performance()).Assemble(ctx, &assembly.Request{
		Chassis: s.chassis(robot.ChassisLight, 4),
		Parts:   s.scenarioParts(),
		Options: assembly.Options{AllowSubstitution: true, Timeout: time.Minute},
	})

	s.False(result.Success)
	s.Equal(assembly.FailureTimeout, result.Failure)
}

type panickingPolicy struct {
	assembly.Policy
}

func (panickingPolicy) Order([]*parts.Part) []*parts.Part {
	panic("gear jammed")
}

func (s *PipelineTestSuite) TestPanicBecomesInternalFailure() {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(start)
	s.mockClock.EXPECT().Now().Return(start.Add(40 * time.Millisecond))

	strategy, err := assembly.New(&assembly.Config{
		Policy: panickingPolicy{Policy: assembly.Balanced()},
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)

	result := strategy.Assemble(s.ctx, &assembly.Request{
		Chassis: s.chassis(robot.ChassisLight, 4),
		Parts:   s.scenarioParts(),
		Options: assembly.DefaultOptions(),
	})

	s.False(result.Success)
	s.Equal(assembly.FailureInternal, result.Failure)
	s.Equal([]string{"Assembly failed: gear jammed"}, result.Errors)
	s.Equal(40*time.Millisecond, result.AssemblyTime)
	s.Equal(int64(40), result.AssemblyTimeMs)
}

func (s *PipelineTestSuite) TestElapsedTimeFromClock() {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(start)
	s.mockClock.EXPECT().Now().Return(start.Add(250 * time.Millisecond))

	strategy, err := assembly.New(&assembly.Config{Policy: assembly.Balanced(), Clock: s.mockClock})
	s.Require().NoError(err)

	result := strategy.Assemble(s.ctx, &assembly.Request{
		Chassis: s.chassis(robot.ChassisBalanced, 6),
		Parts:   s.scenarioParts(),
		Options: assembly.DefaultOptions(),
	})

	s.True(result.Success)
	s.Equal(250*time.Millisecond, result.AssemblyTime)
	s.Equal(int64(250), result.AssemblyTimeMs)
}

func (s *PipelineTestSuite) TestSubstitutionReplacesLowerRarity() {
	req := &assembly.Request{
		Chassis: s.chassis(robot.ChassisLight, 5),
		Parts: []*parts.Part{
			s.part("head-common", robot.CategoryHead, robot.RarityCommon),
			s.part("head-rare", robot.CategoryHead, robot.RarityRare),
			s.part("torso-1", robot.CategoryTorso, robot.RarityRare),
			s.part("arm-1", robot.CategoryArm, robot.RarityRare),
			s.part("leg-1", robot.CategoryLeg, robot.RarityRare),
		},
		Options: assembly.DefaultOptions(),
	}

	result := s.strategy(assembly.Balanced()).Assemble(s.ctx, req)
	s.Require().True(result.Success)

	s.Equal([]string{"HEAD_1=head-rare", "TORSO_1=torso-1", "ARM_LEFT_1=arm-1", "LEG_1=leg-1"},
		assignedIDs(result.Plan))

	subs := result.Plan.Assignment.Substitutions
	s.Require().Len(subs, 1)
	s.Equal("HEAD_1", subs[0].SlotID)
	s.Equal("head-common", subs[0].Removed.ID())
	s.Equal("head-rare", subs[0].Installed.ID())

	s.Require().Len(result.Plan.Assignment.Unassigned, 1)
	s.Equal("replaced by head-rare", result.Plan.Assignment.Unassigned[0].Reason)
}

func (s *PipelineTestSuite) TestSubstitutionDisabledLeavesPartUnassigned() {
	req := &assembly.Request{
		Chassis: s.chassis(robot.ChassisLight, 5),
		Parts: []*parts.Part{
			s.part("head-common", robot.CategoryHead, robot.RarityCommon),
			s.part("head-rare", robot.CategoryHead, robot.RarityRare),
		},
	}

	result := s.strategy(assembly.Balanced()).Assemble(s.ctx, req)
	s.Require().True(result.Success)

	s.Equal([]string{"HEAD_1=head-common"}, assignedIDs(result.Plan))
	s.Require().Len(result.Plan.Assignment.Unassigned, 1)
	s.Equal(assembly.ReasonNoCompatible, result.Plan.Assignment.Unassigned[0].Reason)
}

func (s *PipelineTestSuite) TestChipsFillExpansionSlots() {
	req := &assembly.Request{
		Chassis: s.chassis(robot.ChassisBalanced, 6),
		Parts:   s.scenarioParts(),
		Chips: []*chips.Chip{
			s.chip("chip-1", robot.EffectAttackBuff),
			s.chip("chip-2", robot.EffectCriticalBoost),
			s.chip("chip-3", robot.EffectSpeedBuff),
		},
		Options: assembly.DefaultOptions(),
	}

	result := s.strategy(assembly.Balanced()).Assemble(s.ctx, req)
	s.Require().True(result.Success)

	s.Require().Len(result.Robot.Chips, 2)
	s.Equal("EXPANSION_1", result.Robot.Chips[0].SlotID)
	s.Equal("EXPANSION_2", result.Robot.Chips[1].SlotID)
	s.Contains(result.Warnings, "No free expansion slot for chip chip-3")
	s.Equal(90*time.Second, result.Plan.Steps[4].Duration)
}

func (s *PipelineTestSuite) TestOptimizations() {
	var many []*parts.Part
	for _, id := range []string{"h1", "h2"} {
		many = append(many, s.part(id, robot.CategoryHead, robot.RarityLegendary))
	}
	many = append(many, s.part("t1", robot.CategoryTorso, robot.RarityLegendary))
	for _, id := range []string{"a1", "a2", "a3", "a4"} {
		many = append(many, s.part(id, robot.CategoryArm, robot.RarityEpic))
	}
	for _, id := range []string{"l1", "l2", "l3", "l4"} {
		many = append(many, s.part(id, robot.CategoryLeg, robot.RarityEpic))
	}
	many = append(many, s.part("x1", robot.CategoryAccessory, robot.RarityEpic))

	req := &assembly.Request{
		Chassis: s.chassis(robot.ChassisModular, 16),
		Parts:   many,
		Options: assembly.Options{OptimizePerformance: true, OptimizeCost: true},
	}

	result := s.strategy(assembly.Balanced()).Assemble(s.ctx, req)
	s.Require().True(result.Success, "errors: %v", result.Errors)

	s.Len(result.Plan.Assignment.Assigned, 12)
	s.Len(result.Robot.Parts, 10)
	for _, installed := range result.Robot.Parts {
		s.NotEqual(robot.RarityLegendary, installed.Part.Rarity)
	}
	s.Equal([]string{
		"Removed 2 parts to stay within 10 for performance",
		"Replaced 3 legendary parts with rare equivalents to reduce cost",
	}, result.Optimizations)
}

func (s *PipelineTestSuite) TestLowRatingIsFlagged() {
	result := s.strategy(assembly.Balanced()).Assemble(s.ctx, &assembly.Request{
		Chassis: s.chassis(robot.ChassisLight, 4),
		Parts:   s.scenarioParts(),
		Options: assembly.DefaultOptions(),
	})
	s.Require().True(result.Success)

	s.Less(result.Robot.Rating, 50.0)
	s.Contains(result.Recommendations, assembly.RecommendLowRating)
}

func (s *PipelineTestSuite) TestRatingWeights() {
	rec := testutils.SkeletonRecord("sk", robot.ChassisHeavy, 8)
	rec.BaseDurability = 1000
	sk, err := skeletons.FromRecord(rec)
	s.Require().NoError(err)

	s.InDelta(30.0, assembly.Rating(assembly.Balanced().Weights(), sk, nil, nil), 1e-9)
	s.InDelta(35.0, assembly.Rating(assembly.Performance().Weights(), sk, nil, nil), 1e-9)
	s.InDelta(50.0, assembly.Rating(assembly.Balanced().Weights(), sk, nil, []float64{100}), 1e-9)
}

func (s *PipelineTestSuite) TestConcurrentAssembliesShareNothing() {
	strategy := s.strategy(assembly.Balanced())
	chassis := s.chassis(robot.ChassisBalanced, 6)
	candidates := s.scenarioParts()

	var wg sync.WaitGroup
	results := make([]*assembly.Result, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = strategy.Assemble(s.ctx, &assembly.Request{
				RobotID: fmt.Sprintf("bot-%d", i),
				Chassis: chassis,
				Parts:   candidates,
				Options: assembly.Options{AllowSubstitution: true, Timeout: time.Second},
			})
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		s.Require().True(r.Success)
		s.Equal(fmt.Sprintf("bot-%d", i), r.Robot.ID)
		s.Equal(results[0].Robot.Rating, r.Robot.Rating)
	}
}

func TestPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}
