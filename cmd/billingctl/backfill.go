package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/workshop_billing_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_billing_app/internal/logger"
)

const backfillUser = "billingctl"

func newBackfillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backfill-notes",
		Short: "Promote legacy JSON notes into structured billing columns",
		Long: `Older jobs stored discount details and the invoice number as a JSON
blob in the notes column. This command parses those notes and fills
the structured columns that are still empty. Present values are never
overwritten, so the command is safe to run more than once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			log := logger.WithComponent("backfill")

			return withServices(cmd.Context(), func(c *services.ServiceContainer) error {
				result, err := c.Job.BackfillLegacyNotes(cmd.Context(), backfillUser, dryRun)
				if err != nil {
					log.Error().Err(err).Msg("backfill failed")
					return err
				}

				log.Info().
					Int("scanned", result.Scanned).
					Int("updated", result.Updated).
					Int("skipped", len(result.SkippedJobIDs)).
					Bool("dry_run", result.DryRun).
					Msg("backfill finished")

				out := cmd.OutOrStdout()
				verb := "updated"
				if result.DryRun {
					verb = "would update"
				}
				fmt.Fprintf(out, "scanned %d jobs, %s %d\n", result.Scanned, verb, result.Updated)
				for _, id := range result.JobIDs {
					fmt.Fprintln(out, "  "+id)
				}
				if len(result.SkippedJobIDs) > 0 {
					fmt.Fprintf(out, "skipped %d jobs with conflicting values\n", len(result.SkippedJobIDs))
					for _, id := range result.SkippedJobIDs {
						fmt.Fprintln(out, "  "+id)
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().Bool("dry-run", false, "report the jobs that would change without writing")
	return cmd
}
