package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/robot-forge/internal/config"
	"github.com/KirkDiggler/robot-forge/internal/orchestrators/workshop"
)

var validateCmd = &cobra.Command{
	Use:   "validate [loadout.yaml]",
	Short: "Check part configurations without assembling",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

type validation struct {
	RobotID string                          `json:"robot_id" yaml:"robot_id"`
	Report  *workshop.ValidateLoadoutOutput `json:"report" yaml:"report"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	loadouts, err := config.LoadLoadouts(args[0])
	if err != nil {
		return err
	}

	svc, cleanup, err := newWorkshop(ctx, true)
	if err != nil {
		return err
	}
	defer cleanup()

	reports := make([]validation, 0, len(loadouts))
	for _, l := range loadouts {
		out, err := svc.ValidateLoadout(ctx, &workshop.ValidateLoadoutInput{Parts: l.Parts})
		if err != nil {
			return err
		}
		reports = append(reports, validation{RobotID: l.RobotID, Report: out})
	}

	w := cmd.OutOrStdout()
	if done, err := printStructured(w, reports); done {
		return err
	}

	for _, v := range reports {
		r := v.Report.Report
		fmt.Fprintf(w, "\nRobot %s: balanced=%t rating=%.1f\n", v.RobotID, r.IsBalanced, r.OverallRating)
		for _, p := range v.Report.Parts {
			caps := "-"
			if len(p.Capabilities) > 0 {
				caps = strings.Join(p.Capabilities, ", ")
			}
			fmt.Fprintf(w, "  %-10s %-24s score=%.2f capabilities=%s\n", p.Category, p.Name, p.PerformanceScore, caps)
		}
		for _, syn := range r.Synergies {
			fmt.Fprintf(w, "  synergy %s + %s: +%.0f%%\n", syn.PartA, syn.PartB, syn.Bonus*100)
		}
		printList(w, "  Conflicts", r.Conflicts)
		printList(w, "  Recommendations", r.Recommendations)
	}
	return nil
}
