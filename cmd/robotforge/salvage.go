package main

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/robot-forge/internal/config"
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/orchestrators/salvage"
	"github.com/KirkDiggler/robot-forge/internal/pkg/idgen"
)

var (
	salvageCount    int
	salvageCategory string
)

var salvageCmd = &cobra.Command{
	Use:   "salvage",
	Short: "Roll random part records",
	Long: `Salvage rolls fresh parts and prints them as a YAML parts list that can be
pasted into a loadout. Examples:

  robotforge salvage --count 5
  robotforge salvage --count 2 --category arm`,
	Args: cobra.NoArgs,
	RunE: runSalvage,
}

func init() {
	salvageCmd.Flags().IntVarP(&salvageCount, "count", "n", 1, "Number of parts to roll")
	salvageCmd.Flags().StringVar(&salvageCategory, "category", "", "Only roll parts of this category")
}

func runSalvage(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	svc, err := salvage.NewOrchestrator(&salvage.Config{
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewUUID("part"),
	})
	if err != nil {
		return err
	}

	out, err := svc.Generate(ctx, &salvage.GenerateInput{
		Count:    salvageCount,
		Category: robot.PartCategory(strings.ToUpper(salvageCategory)),
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if outputFmt == "json" {
		_, err := printStructured(w, out.Parts)
		return err
	}
	return config.WriteParts(w, out.Parts)
}
