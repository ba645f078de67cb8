package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jask/kikaportals/internal/database/repository"
	"github.com/jask/kikaportals/internal/service"
)

var errJobNotFound = errors.New("job not found")

func newJobsCmd() *cobra.Command {
	var query string
	c := &cobra.Command{
		Use:   "jobs",
		Short: "List open positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			search := &service.JobSearch{Jobs: e.jobs}
			jobs, err := search.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			if len(jobs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No jobs match.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), jobsTable(jobs))
			return nil
		},
	}
	c.Flags().StringVarP(&query, "query", "q", "", "filter by position, company or location")
	c.AddCommand(newJobShowCmd())
	return c
}

func newJobShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("job id %q: %w", args[0], err)
			}
			e, err := openEnv(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			job, err := e.jobs.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if job == nil {
				return fmt.Errorf("%w: %d", errJobNotFound, id)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s\n%s\n%s\n", job.Position, job.Company, job.Location, job.SalaryRange)
			return nil
		},
	}
}

func newApplicationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "applications",
		Aliases: []string{"apps"},
		Short:   "List submitted applications and their status",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			apps, err := e.apps.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(apps) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No applications submitted yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), applicationsTable(apps))
			return nil
		},
	}
}

func jobsTable(jobs []repository.JobPosting) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Position", "Company", "Location", "Salary")
	for _, j := range jobs {
		t.Row(strconv.Itoa(j.ID), j.Position, j.Company, j.Location, j.SalaryRange)
	}
	return t.String()
}

func applicationsTable(apps []repository.Application) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Position", "Company", "Applied", "Status")
	for _, a := range apps {
		t.Row(a.Position, a.Company, a.AppliedDate, string(a.Status))
	}
	return t.String()
}
