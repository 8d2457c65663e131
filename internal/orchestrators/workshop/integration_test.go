package workshop_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/robot-forge/internal/assembly"
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/errors"
	"github.com/KirkDiggler/robot-forge/internal/orchestrators/workshop"
	"github.com/KirkDiggler/robot-forge/internal/pkg/idgen"
	assemblylocks "github.com/KirkDiggler/robot-forge/internal/repositories/assembly_locks"
	assemblyresults "github.com/KirkDiggler/robot-forge/internal/repositories/assembly_results"
	"github.com/KirkDiggler/robot-forge/internal/testutils"
)

type WorkshopIntegrationTestSuite struct {
	suite.Suite
	ctx          context.Context
	mr           *miniredis.Miniredis
	cleanup      func()
	locks        assemblylocks.Repository
	orchestrator workshop.Service
}

func (s *WorkshopIntegrationTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, mr, cleanup := testutils.CreateTestRedis(s.T())
	s.mr = mr
	s.cleanup = cleanup

	results, err := assemblyresults.NewRedisRepository(&assemblyresults.Config{Client: client})
	s.Require().NoError(err)

	s.locks, err = assemblylocks.NewRedisRepository(&assemblylocks.Config{
		Client:      client,
		IDGenerator: idgen.NewUUID("lock"),
	})
	s.Require().NoError(err)

	s.orchestrator, err = workshop.NewOrchestrator(&workshop.Config{
		Results:     results,
		Locks:       s.locks,
		IDGenerator: idgen.NewSequential("asm"),
		LockTTL:     10 * time.Second,
	})
	s.Require().NoError(err)
}

func (s *WorkshopIntegrationTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *WorkshopIntegrationTestSuite) TestAssemblyHistory() {
	// Arrange
	l := loadout("bot-1")

	// Act
	first, err := s.orchestrator.Assemble(s.ctx, &workshop.AssembleInput{Loadout: l})
	s.Require().NoError(err)
	second, err := s.orchestrator.Assemble(s.ctx, &workshop.AssembleInput{
		Loadout:  l,
		Strategy: assembly.PolicyBalanced,
	})
	s.Require().NoError(err)

	// Assert
	s.False(s.mr.Exists("assembly_lock:bot-1"), "lock should be released")

	got, err := s.orchestrator.GetAssembly(s.ctx, &workshop.GetAssemblyInput{ID: second.Record.ID})
	s.Require().NoError(err)
	s.Equal(assembly.PolicyBalanced, got.Record.Strategy)
	s.Require().NotNil(got.Record.Robot)
	s.Len(got.Record.Robot.Parts, len(l.Parts))

	list, err := s.orchestrator.ListAssemblies(s.ctx, &workshop.ListAssembliesInput{RobotID: "bot-1"})
	s.Require().NoError(err)
	s.Require().Len(list.Records, 2)
	s.ElementsMatch(
		[]string{first.Record.ID, second.Record.ID},
		[]string{list.Records[0].ID, list.Records[1].ID})
}

func (s *WorkshopIntegrationTestSuite) TestAssembleWhileLocked() {
	// Arrange
	held, err := s.locks.Acquire(s.ctx, assemblylocks.AcquireInput{Entity: robot.Ref("bot-1")})
	s.Require().NoError(err)

	// Act
	_, err = s.orchestrator.Assemble(s.ctx, &workshop.AssembleInput{Loadout: loadout("bot-1")})

	// Assert
	s.True(errors.IsAborted(err), "unexpected error: %v", err)

	list, err := s.orchestrator.ListAssemblies(s.ctx, &workshop.ListAssembliesInput{RobotID: "bot-1"})
	s.Require().NoError(err)
	s.Empty(list.Records)

	s.Require().NoError(s.locks.Release(s.ctx, assemblylocks.ReleaseInput{
		Entity: robot.Ref("bot-1"),
		Token:  held.Token,
	}))
	_, err = s.orchestrator.Assemble(s.ctx, &workshop.AssembleInput{Loadout: loadout("bot-1")})
	s.NoError(err)
}

func (s *WorkshopIntegrationTestSuite) TestBatchAgainstRedis() {
	jobs := make([]*workshop.AssembleInput, 0, 6)
	for _, id := range []string{"bot-1", "bot-2", "bot-3", "bot-4", "bot-5", "bot-6"} {
		jobs = append(jobs, &workshop.AssembleInput{Loadout: loadout(id)})
	}

	out, err := s.orchestrator.AssembleBatch(s.ctx, &workshop.AssembleBatchInput{Jobs: jobs})
	s.Require().NoError(err)
	s.Require().Len(out.Outputs, 6)

	for i, job := range jobs {
		s.Equal(job.Loadout.RobotID, out.Outputs[i].Record.RobotID)
		s.False(s.mr.Exists("assembly_lock:" + job.Loadout.RobotID))
	}
}

func TestWorkshopIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(WorkshopIntegrationTestSuite))
}
