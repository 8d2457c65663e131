package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/robot-forge/internal/errors"
	"github.com/KirkDiggler/robot-forge/internal/orchestrators/workshop"
	assemblyresults "github.com/KirkDiggler/robot-forge/internal/repositories/assembly_results"
)

var assemblyID string

var historyCmd = &cobra.Command{
	Use:   "history [robot-id]",
	Short: "Show stored assemblies for a robot",
	Long: `History lists a robot's stored assemblies, oldest first. With --id it shows
a single assembly instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&assemblyID, "id", "", "Show one assembly by ID")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if assemblyID == "" && len(args) == 0 {
		return errors.InvalidArgument("either a robot ID or --id is required")
	}

	svc, cleanup, err := newWorkshop(ctx, false)
	if err != nil {
		return err
	}
	defer cleanup()

	var records []*assemblyresults.AssemblyRecord
	if assemblyID != "" {
		out, err := svc.GetAssembly(ctx, &workshop.GetAssemblyInput{ID: assemblyID})
		if err != nil {
			return err
		}
		records = append(records, out.Record)
	} else {
		out, err := svc.ListAssemblies(ctx, &workshop.ListAssembliesInput{RobotID: args[0]})
		if err != nil {
			return err
		}
		records = out.Records
	}

	w := cmd.OutOrStdout()
	if done, err := printStructured(w, records); done {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No assemblies found")
		return nil
	}
	for _, r := range records {
		printRecord(w, r)
	}
	return nil
}

func printRecord(w io.Writer, r *assemblyresults.AssemblyRecord) {
	status := "OK"
	if !r.Success {
		status = "FAILED (" + r.Failure + ")"
	}
	fmt.Fprintf(w, "%s  %s  %-11s %-12s %s\n",
		r.CreatedAt.Format(time.RFC3339), r.ID, r.Strategy, status,
		time.Duration(r.AssemblyTimeMs)*time.Millisecond)
	if r.Robot != nil {
		fmt.Fprintf(w, "  rating %.1f, %d parts, %d chips\n", r.Robot.Rating, len(r.Robot.Parts), len(r.Robot.Chips))
	}
	printList(w, "  Errors", r.Errors)
}
