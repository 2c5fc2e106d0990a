package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/SscSPs/workshop_billing_app/internal/core/ports/services"
	svc "github.com/SscSPs/workshop_billing_app/internal/core/services"
	"github.com/SscSPs/workshop_billing_app/internal/logger"
	"github.com/SscSPs/workshop_billing_app/internal/utils"
)

func newOverviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Print per-bucket job counts and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scope, _ := cmd.Flags().GetString("scope")
			if scope != svc.ScopeAll && scope != svc.ScopeOpen {
				return fmt.Errorf("scope must be %q or %q", svc.ScopeAll, svc.ScopeOpen)
			}
			log := logger.WithComponent("overview")

			return withServices(cmd.Context(), func(c *services.ServiceContainer) error {
				overview, err := c.Accounts.Overview(cmd.Context(), scope)
				if err != nil {
					log.Error().Err(err).Msg("overview failed")
					return err
				}
				return printOverview(cmd.OutOrStdout(), overview)
			})
		},
	}
	cmd.Flags().String("scope", svc.ScopeAll, "job snapshot to partition (all, open)")
	return cmd
}

func printOverview(w io.Writer, o *domain.AccountsOverview) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "bucket\tjobs\tnet payable\tpaid\tdue\t\n")
	for _, b := range domain.AllBuckets() {
		s, ok := o.Summaries[b]
		if !ok {
			s = domain.BucketSummary{Bucket: b}
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t\n", b, s.Count,
			utils.FormatMoney(s.TotalNetPayable), utils.FormatMoney(s.TotalPaid), utils.FormatMoney(s.TotalBalanceDue))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "scope: %s\n", o.Scope)
	return err
}
