package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/robot-forge/internal/assembly"
	"github.com/KirkDiggler/robot-forge/internal/config"
	"github.com/KirkDiggler/robot-forge/internal/orchestrators/workshop"
)

var (
	strategyName        string
	noSubstitution      bool
	optimizePerformance bool
	optimizeCost        bool
	assemblyTimeout     time.Duration
)

var assembleCmd = &cobra.Command{
	Use:   "assemble [loadout.yaml]",
	Short: "Assemble every robot in a loadout file",
	Long: `Assemble reads one or more loadouts from a YAML file and builds each robot.
Several loadouts in one file are assembled in parallel. Examples:

  robotforge assemble scout.yaml --ephemeral
  robotforge assemble fleet.yaml --strategy performance --optimize-cost`,
	Args: cobra.ExactArgs(1),
	RunE: runAssemble,
}

func init() {
	assembleCmd.Flags().StringVar(&strategyName, "strategy", "", "Force a strategy: balanced or performance")
	assembleCmd.Flags().BoolVar(&noSubstitution, "no-substitution", false, "Never replace an installed part with a better one")
	assembleCmd.Flags().BoolVar(&optimizePerformance, "optimize-performance", false, "Trim the build to at most 10 parts")
	assembleCmd.Flags().BoolVar(&optimizeCost, "optimize-cost", false, "Swap legendary parts for rare ones")
	assembleCmd.Flags().DurationVar(&assemblyTimeout, "timeout", 0, "Per-robot timeout (overrides ROBOTFORGE_ASSEMBLY_TIMEOUT)")
}

func runAssemble(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	loadouts, err := config.LoadLoadouts(args[0])
	if err != nil {
		return err
	}

	svc, cleanup, err := newWorkshop(ctx, false)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := assembly.DefaultOptions()
	opts.AllowSubstitution = !noSubstitution
	opts.OptimizePerformance = optimizePerformance
	opts.OptimizeCost = optimizeCost
	opts.Timeout = cfg.AssemblyTimeout
	if assemblyTimeout > 0 {
		opts.Timeout = assemblyTimeout
	}

	jobs := make([]*workshop.AssembleInput, 0, len(loadouts))
	for _, l := range loadouts {
		jobs = append(jobs, &workshop.AssembleInput{Loadout: l, Strategy: strategyName, Options: &opts})
	}

	var outputs []*workshop.AssembleOutput
	if len(jobs) == 1 {
		out, err := svc.Assemble(ctx, jobs[0])
		if err != nil {
			return err
		}
		outputs = []*workshop.AssembleOutput{out}
	} else {
		out, err := svc.AssembleBatch(ctx, &workshop.AssembleBatchInput{Jobs: jobs})
		if err != nil {
			return err
		}
		outputs = out.Outputs
	}

	w := cmd.OutOrStdout()
	results := make([]*assembly.Result, 0, len(outputs))
	for _, out := range outputs {
		results = append(results, out.Result)
	}
	if done, err := printStructured(w, results); done {
		return err
	}

	for _, out := range outputs {
		printResult(w, out)
	}
	return nil
}

func printResult(w io.Writer, out *workshop.AssembleOutput) {
	res := out.Result
	status := "OK"
	if !res.Success {
		status = "FAILED (" + string(res.Failure) + ")"
	}

	fmt.Fprintf(w, "\nRobot %s: %s\n", out.Record.RobotID, status)
	fmt.Fprintf(w, "  Assembly ID: %s\n", out.Record.ID)
	fmt.Fprintf(w, "  Strategy:    %s\n", res.Strategy)
	fmt.Fprintf(w, "  Time:        %s\n", res.AssemblyTime)

	if res.Robot != nil {
		fmt.Fprintf(w, "  Rating:      %.1f\n", res.Robot.Rating)
		for _, p := range res.Robot.Parts {
			fmt.Fprintf(w, "    %-12s %s (%s %s)\n", p.SlotID, p.Part.Name, p.Part.Rarity, p.Part.Category)
		}
		for _, c := range res.Robot.Chips {
			fmt.Fprintf(w, "    %-12s %s (%s)\n", c.SlotID, c.Chip.Name, c.Chip.Effect)
		}
	}
	if res.Plan != nil {
		fmt.Fprintf(w, "  Estimated build time: %s over %d steps\n", res.Plan.EstimatedDuration, len(res.Plan.Steps))
	}

	printList(w, "  Errors", res.Errors)
	printList(w, "  Warnings", res.Warnings)
	printList(w, "  Optimizations", res.Optimizations)
	printList(w, "  Recommendations", res.Recommendations)
}
