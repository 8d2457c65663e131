package slots_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/errors"
	"github.com/KirkDiggler/robot-forge/internal/slots"
)

type RegistryTestSuite struct {
	suite.Suite
}

func ids(defs []slots.Definition) []string {
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.ID
	}
	return out
}

func (s *RegistryTestSuite) TestLayoutOrder() {
	testCases := []struct {
		chassis robot.ChassisType
		want    []string
	}{
		{robot.ChassisLight, []string{
			"HEAD_1", "TORSO_1", "ARM_LEFT_1", "ARM_RIGHT_1", "LEG_1",
			"ACCESSORY_1", "EXPANSION_1", "SOUL_CHIP",
		}},
		{robot.ChassisBalanced, []string{
			"HEAD_1", "TORSO_1", "ARM_LEFT_1", "ARM_RIGHT_1", "LEG_LEFT_1", "LEG_RIGHT_1",
			"ACCESSORY_1", "ACCESSORY_2", "EXPANSION_1", "EXPANSION_2", "SOUL_CHIP",
		}},
		{robot.ChassisHeavy, []string{
			"HEAD_1", "TORSO_1", "ARM_LEFT_1", "ARM_LEFT_2", "ARM_RIGHT_1", "ARM_RIGHT_2",
			"LEG_LEFT_1", "LEG_LEFT_2", "LEG_RIGHT_1", "LEG_RIGHT_2",
			"ACCESSORY_1", "EXPANSION_1", "EXPANSION_2", "EXPANSION_3", "SOUL_CHIP",
		}},
		{robot.ChassisFlying, []string{
			"HEAD_1", "HEAD_2", "TORSO_1", "ARM_LEFT_1", "ARM_RIGHT_1", "LEG_1",
			"ACCESSORY_1", "ACCESSORY_2", "EXPANSION_1", "EXPANSION_2", "SOUL_CHIP",
		}},
		{robot.ChassisModular, []string{
			"HEAD_1", "HEAD_2", "TORSO_1", "ARM_LEFT_1", "ARM_LEFT_2", "ARM_RIGHT_1", "ARM_RIGHT_2",
			"LEG_LEFT_1", "LEG_LEFT_2", "LEG_RIGHT_1", "LEG_RIGHT_2",
			"ACCESSORY_1", "ACCESSORY_2", "EXPANSION_1", "EXPANSION_2", "EXPANSION_3", "SOUL_CHIP",
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.chassis.String(), func() {
			layout, err := slots.Layout(tc.chassis)
			s.Require().NoError(err)
			if diff := cmp.Diff(tc.want, ids(layout)); diff != "" {
				s.Failf("layout mismatch", "(-want +got):\n%s", diff)
			}
		})
	}
}

func (s *RegistryTestSuite) TestRequiredSlots() {
	light, err := slots.RequiredSlots(robot.ChassisLight)
	s.Require().NoError(err)
	s.Equal([]string{"HEAD_1", "TORSO_1", "LEG_1", "SOUL_CHIP"}, light)

	for _, chassis := range robot.AllChassisTypes() {
		required, err := slots.RequiredSlots(chassis)
		s.Require().NoError(err)
		s.Len(required, 4, chassis)
		s.Contains(required, slots.SoulChipSlot)
	}
}

func (s *RegistryTestSuite) TestAccepts() {
	testCases := []struct {
		name      string
		chassis   robot.ChassisType
		slot      string
		component slots.Component
		want      bool
	}{
		{"head in head slot", robot.ChassisLight, "HEAD_1", slots.ComponentHead, true},
		{"arm in head slot", robot.ChassisLight, "HEAD_1", slots.ComponentArm, false},
		{"chip in expansion", robot.ChassisHeavy, "EXPANSION_3", slots.ComponentExpansionChip, true},
		{"part in expansion", robot.ChassisHeavy, "EXPANSION_3", slots.ComponentAccessory, false},
		{"arm in modular accessory", robot.ChassisModular, "ACCESSORY_2", slots.ComponentArm, true},
		{"arm in balanced accessory", robot.ChassisBalanced, "ACCESSORY_2", slots.ComponentArm, false},
		{"soul chip", robot.ChassisFlying, "SOUL_CHIP", slots.ComponentSoulChip, true},
		{"missing slot", robot.ChassisLight, "HEAD_2", slots.ComponentHead, false},
		{"unknown chassis", "SPIDER", "HEAD_1", slots.ComponentHead, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, slots.Accepts(tc.chassis, tc.slot, tc.component))
		})
	}
}

func (s *RegistryTestSuite) TestLayoutIsACopy() {
	layout, err := slots.Layout(robot.ChassisModular)
	s.Require().NoError(err)
	layout[0].ID = "CHANGED"
	layout[0].Accepts[0] = slots.ComponentLeg

	again, err := slots.Layout(robot.ChassisModular)
	s.Require().NoError(err)
	s.Equal("HEAD_1", again[0].ID)
	s.Equal([]slots.Component{slots.ComponentHead}, again[0].Accepts)
}

func (s *RegistryTestSuite) TestLookup() {
	def, err := slots.Lookup(robot.ChassisModular, "ACCESSORY_1")
	s.Require().NoError(err)
	s.Equal([]slots.Component{slots.ComponentAccessory, slots.ComponentArm}, def.Accepts)
	s.False(def.Required)

	_, err = slots.Lookup(robot.ChassisLight, "ARM_LEFT_2")
	s.True(errors.IsNotFound(err))

	_, err = slots.Lookup("SPIDER", "HEAD_1")
	s.True(errors.IsInvalidArgument(err))
}

func (s *RegistryTestSuite) TestUnknownChassis() {
	_, err := slots.Layout("SPIDER")
	s.True(errors.IsInvalidArgument(err))

	_, err = slots.RequiredSlots("SPIDER")
	s.True(errors.IsInvalidArgument(err))
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}
