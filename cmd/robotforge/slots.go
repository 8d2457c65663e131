package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/slots"
)

var slotsCmd = &cobra.Command{
	Use:   "slots [chassis-type]",
	Short: "Show the slot layout of a chassis type",
	Long: `Show which components each slot of a chassis accepts. With no argument
every chassis type is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSlots,
}

func runSlots(cmd *cobra.Command, args []string) error {
	chassisTypes := robot.AllChassisTypes()
	if len(args) == 1 {
		chassisTypes = []robot.ChassisType{robot.ChassisType(strings.ToUpper(args[0]))}
	}

	layouts := make(map[robot.ChassisType][]slots.Definition, len(chassisTypes))
	for _, ct := range chassisTypes {
		layout, err := slots.Layout(ct)
		if err != nil {
			return err
		}
		layouts[ct] = layout
	}

	w := cmd.OutOrStdout()
	if done, err := printStructured(w, layouts); done {
		return err
	}

	for _, ct := range chassisTypes {
		fmt.Fprintf(w, "\n%s (%s)\n", ct, ct.DefaultMobility())
		for _, def := range layouts[ct] {
			required := ""
			if def.Required {
				required = " required"
			}
			accepts := make([]string, 0, len(def.Accepts))
			for _, c := range def.Accepts {
				accepts = append(accepts, string(c))
			}
			fmt.Fprintf(w, "  %-12s (%2d,%2d) %s%s\n",
				def.ID, def.Position.X, def.Position.Y, strings.Join(accepts, "|"), required)
		}
	}
	return nil
}
