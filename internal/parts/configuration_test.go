package parts_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/parts"
	"github.com/KirkDiggler/robot-forge/internal/testutils"
)

type ConfigurationTestSuite struct {
	suite.Suite
}

func (s *ConfigurationTestSuite) part(id string, category robot.PartCategory, rarity robot.Rarity, level int) *parts.Part {
	rec := testutils.PartRecord(id, category, rarity)
	rec.UpgradeLevel = level
	p, err := parts.FromRecord(rec)
	s.Require().NoError(err)
	return p
}

func (s *ConfigurationTestSuite) TestMissingHead() {
	report := parts.ValidateConfiguration([]*parts.Part{
		s.part("arm-1", robot.CategoryArm, robot.RarityRare, 0),
		s.part("leg-1", robot.CategoryLeg, robot.RarityRare, 0),
		s.part("torso-1", robot.CategoryTorso, robot.RarityRare, 0),
	})

	s.False(report.IsBalanced)
	s.Contains(report.Conflicts, "Missing required part: HEAD")
	s.Len(report.Conflicts, 1)
}

func (s *ConfigurationTestSuite) TestNilPartsIgnored() {
	head := s.part("head-1", robot.CategoryHead, robot.RarityRare, 0)
	torso := s.part("torso-1", robot.CategoryTorso, robot.RarityRare, 0)
	arm := s.part("arm-1", robot.CategoryArm, robot.RarityRare, 0)
	leg := s.part("leg-1", robot.CategoryLeg, robot.RarityRare, 0)

	s.NotPanics(func() {
		withNils := parts.ValidateConfiguration([]*parts.Part{nil, head, torso, nil, arm, leg})
		clean := parts.ValidateConfiguration([]*parts.Part{head, torso, arm, leg})
		s.Equal(clean, withNils)
	})

	report := parts.ValidateConfiguration([]*parts.Part{nil})
	s.Len(report.Conflicts, len(robot.RequiredPartCategories()))
	s.Zero(report.OverallRating)
}

func (s *ConfigurationTestSuite) TestCompleteSetRecordsSynergies() {
	head := s.part("head-1", robot.CategoryHead, robot.RarityRare, 0)
	torso := s.part("torso-1", robot.CategoryTorso, robot.RarityRare, 0)
	arm := s.part("arm-1", robot.CategoryArm, robot.RarityRare, 0)
	leg := s.part("leg-1", robot.CategoryLeg, robot.RarityRare, 0)

	report := parts.ValidateConfiguration([]*parts.Part{head, torso, arm, leg})

	s.True(report.IsBalanced)
	s.Empty(report.Conflicts)
	s.Empty(report.Recommendations)

	// head->torso, head->arm, torso->arm, torso->leg; arm->leg has no rule
	s.Equal([]parts.Synergy{
		{PartA: "head-1", PartB: "torso-1", Bonus: 0.05},
		{PartA: "head-1", PartB: "arm-1", Bonus: 0.12},
		{PartA: "torso-1", PartB: "arm-1", Bonus: 0.15},
		{PartA: "torso-1", PartB: "leg-1", Bonus: 0.10},
	}, report.Synergies)

	want := parts.MeanPerformance([]*parts.Part{head, torso, arm, leg})*5 + 0.1*4
	s.InDelta(want, report.OverallRating, 1e-9)
}

func (s *ConfigurationTestSuite) TestIncompatiblePairIsConflict() {
	report := parts.ValidateConfiguration([]*parts.Part{
		s.part("head-1", robot.CategoryHead, robot.RarityUltraRare, 0),
		s.part("torso-1", robot.CategoryTorso, robot.RarityCommon, 0),
		s.part("arm-1", robot.CategoryArm, robot.RarityRare, 0),
		s.part("leg-1", robot.CategoryLeg, robot.RarityRare, 0),
	})

	s.False(report.IsBalanced)
	s.Equal([]string{"Incompatible parts: HEAD head-1 and TORSO torso-1"}, report.Conflicts)
}

func (s *ConfigurationTestSuite) TestRecommendations() {
	testCases := []struct {
		name  string
		parts []*parts.Part
		want  []string
	}{
		{
			name: "level spread above five",
			parts: []*parts.Part{
				s.part("arm-1", robot.CategoryArm, robot.RarityRare, 0),
				s.part("leg-1", robot.CategoryLeg, robot.RarityRare, 6),
			},
			want: []string{parts.RecommendBalanceLevels},
		},
		{
			name: "level spread of exactly five",
			parts: []*parts.Part{
				s.part("arm-1", robot.CategoryArm, robot.RarityRare, 0),
				s.part("leg-1", robot.CategoryLeg, robot.RarityRare, 5),
			},
		},
		{
			name: "rarity variance above four",
			parts: []*parts.Part{
				s.part("arm-1", robot.CategoryArm, robot.RarityCommon, 0),
				s.part("leg-1", robot.CategoryLeg, robot.RarityPrototype, 0),
			},
			want: []string{parts.RecommendSimilarRarity},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			report := parts.ValidateConfiguration(tc.parts)
			s.Equal(tc.want, report.Recommendations)
		})
	}
}

func (s *ConfigurationTestSuite) TestRatingClampedLow() {
	var arms []*parts.Part
	for i := 0; i < 10; i++ {
		arms = append(arms, s.part("arm", robot.CategoryArm, robot.RarityCommon, 0))
	}

	report := parts.ValidateConfiguration(arms)

	s.Len(report.Conflicts, 3+45)
	s.Equal(0.0, report.OverallRating)
}

func (s *ConfigurationTestSuite) TestRatingClampedHigh() {
	var set []*parts.Part
	for _, cat := range robot.AllPartCategories() {
		rec := testutils.PartRecord(string(cat), cat, robot.RarityPrototype)
		rec.Stats = robot.Stats{Attack: 300, Defense: 300, Speed: 300, Perception: 300}
		p, err := parts.FromRecord(rec)
		s.Require().NoError(err)
		set = append(set, p)
	}

	report := parts.ValidateConfiguration(set)

	s.Empty(report.Conflicts)
	s.NotEmpty(report.Synergies)
	s.Equal(10.0, report.OverallRating)
}

func (s *ConfigurationTestSuite) TestEmptySet() {
	report := parts.ValidateConfiguration(nil)

	s.Len(report.Conflicts, 4)
	s.Equal(0.0, report.OverallRating)
	s.False(report.IsBalanced)
}

func TestConfigurationTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigurationTestSuite))
}
