package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/errors"
)

type CLITestSuite struct {
	suite.Suite
}

func (s *CLITestSuite) execute(args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func (s *CLITestSuite) TestSlots() {
	out, err := s.execute("slots", "light", "-o", "text")
	s.Require().NoError(err)
	s.Contains(out, "LIGHT (BIPEDAL)")
	s.Contains(out, "SOUL_CHIP")

	_, err = s.execute("slots", "blimp", "-o", "text")
	s.True(errors.IsInvalidArgument(err))
}

func (s *CLITestSuite) TestSalvageYAML() {
	out, err := s.execute("salvage", "-n", "3", "--category", "arm", "-o", "text")
	s.Require().NoError(err)

	var recs []robot.PartRecord
	s.Require().NoError(yaml.Unmarshal([]byte(out), &recs))
	s.Require().Len(recs, 3)
	for _, rec := range recs {
		s.Equal(robot.CategoryArm, rec.Category)
		s.Require().Len(rec.Abilities, 1)
	}
}

func (s *CLITestSuite) TestAssembleFleetEphemeral() {
	out, err := s.execute("assemble", filepath.Join("testdata", "fleet.yaml"),
		"--ephemeral", "-o", "json", "--strategy", "")
	s.Require().NoError(err)

	var results []struct {
		Success  bool   `json:"success"`
		Strategy string `json:"strategy"`
		Robot    struct {
			ID    string `json:"id"`
			Parts []any  `json:"parts"`
		} `json:"robot"`
	}
	s.Require().NoError(json.Unmarshal([]byte(out), &results))
	s.Require().Len(results, 2)

	s.True(results[0].Success)
	s.Equal("balanced", results[0].Strategy)
	s.Equal("scout-1", results[0].Robot.ID)
	s.Len(results[0].Robot.Parts, 4)

	s.True(results[1].Success)
	s.Equal("tank-1", results[1].Robot.ID)
}

func (s *CLITestSuite) TestAssembleFleetEphemeralYAML() {
	out, err := s.execute("assemble", filepath.Join("testdata", "fleet.yaml"),
		"--ephemeral", "-o", "yaml", "--strategy", "")
	s.Require().NoError(err)

	var results []map[string]any
	s.Require().NoError(yaml.Unmarshal([]byte(out), &results))
	s.Require().Len(results, 2)

	first := results[0]
	s.NotContains(first, "plan")
	s.NotContains(first, "assemblytime")
	s.Contains(first, "assembly_time_ms")
	s.Equal(true, first["success"])
	s.Equal("balanced", first["strategy"])

	bot, ok := first["robot"].(map[string]any)
	s.Require().True(ok, "robot should be a mapping")
	s.Equal("scout-1", bot["id"])
	installed, ok := bot["parts"].([]any)
	s.Require().True(ok)
	s.Require().Len(installed, 4)
	slot, ok := installed[0].(map[string]any)
	s.Require().True(ok)
	s.Contains(slot, "slot_id")
}

func (s *CLITestSuite) TestValidate() {
	out, err := s.execute("validate", filepath.Join("testdata", "fleet.yaml"), "-o", "text")
	s.Require().NoError(err)
	s.Contains(out, "Robot scout-1: balanced=true")
	s.Contains(out, "Robot tank-1")
}

func (s *CLITestSuite) TestBadArguments() {
	_, err := s.execute("assemble", filepath.Join("testdata", "missing.yaml"), "-o", "text")
	s.True(errors.IsNotFound(err))

	_, err = s.execute("slots", "-o", "xml")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.execute("history", "-o", "text", "--id", "")
	s.True(errors.IsInvalidArgument(err))
}

func TestCLITestSuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}
