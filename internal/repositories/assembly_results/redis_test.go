package assemblyresults_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/errors"
	assemblyresults "github.com/KirkDiggler/robot-forge/internal/repositories/assembly_results"
	"github.com/KirkDiggler/robot-forge/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	cleanup func()
	repo    assemblyresults.Repository
	now     time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	client, mr, cleanup := testutils.CreateTestRedis(s.T())
	s.mr = mr
	s.cleanup = cleanup

	repo, err := assemblyresults.NewRedisRepository(&assemblyresults.Config{Client: client, TTL: time.Hour})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) record(id, robotID string, offset time.Duration) *assemblyresults.AssemblyRecord {
	return &assemblyresults.AssemblyRecord{
		ID:       id,
		RobotID:  robotID,
		Strategy: "balanced",
		Success:  true,
		Robot: &robot.Robot{
			ID:      robotID,
			Chassis: testutils.SkeletonRecord("sk-1", robot.ChassisLight, 4),
			Parts: []robot.InstalledPart{
				{SlotID: "HEAD_1", Part: testutils.PartRecord("head-1", robot.CategoryHead, robot.RarityRare)},
			},
			Rating: 42.5,
		},
		Warnings:       []string{"Required slot SOUL_CHIP is empty"},
		AssemblyTimeMs: 12,
		CreatedAt:      s.now.Add(offset),
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	rec := s.record("asm-1", "bot-1", 0)

	_, err := s.repo.Create(s.ctx, assemblyresults.CreateInput{Record: rec})
	s.Require().NoError(err)

	s.True(s.mr.Exists("assembly_result:asm-1"))
	s.True(s.mr.TTL("assembly_result:asm-1") > 0)

	out, err := s.repo.Get(s.ctx, assemblyresults.GetInput{ID: "asm-1"})
	s.Require().NoError(err)
	s.Equal(rec, out.Record)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	rec := s.record("asm-1", "bot-1", 0)
	_, err := s.repo.Create(s.ctx, assemblyresults.CreateInput{Record: rec})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, assemblyresults.CreateInput{Record: rec})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	testCases := []struct {
		name   string
		record *assemblyresults.AssemblyRecord
	}{
		{name: "nil record"},
		{name: "missing id", record: &assemblyresults.AssemblyRecord{RobotID: "bot-1"}},
		{name: "missing robot", record: &assemblyresults.AssemblyRecord{ID: "asm-1"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, assemblyresults.CreateInput{Record: tc.record})
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, assemblyresults.GetInput{ID: "nope"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByRobotOrdersOldestFirst() {
	for _, rec := range []*assemblyresults.AssemblyRecord{
		s.record("asm-b", "bot-1", 2*time.Minute),
		s.record("asm-a", "bot-1", time.Minute),
		s.record("asm-c", "bot-2", 0),
	} {
		_, err := s.repo.Create(s.ctx, assemblyresults.CreateInput{Record: rec})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListByRobot(s.ctx, assemblyresults.ListByRobotInput{RobotID: "bot-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 2)
	s.Equal("asm-a", out.Records[0].ID)
	s.Equal("asm-b", out.Records[1].ID)
}

func (s *RedisRepositoryTestSuite) TestListByRobotDropsExpired() {
	_, err := s.repo.Create(s.ctx, assemblyresults.CreateInput{Record: s.record("asm-1", "bot-1", 0)})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Hour)

	out, err := s.repo.ListByRobot(s.ctx, assemblyresults.ListByRobotInput{RobotID: "bot-1"})
	s.Require().NoError(err)
	s.Empty(out.Records)

	members, err := s.mr.SMembers("assembly_result:robot:bot-1")
	if err == nil {
		s.Empty(members)
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedisRepositoryRequiresClient() {
	_, err := assemblyresults.NewRedisRepository(&assemblyresults.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = assemblyresults.NewRedisRepository(nil)
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
