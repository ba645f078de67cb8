package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jask/kikaportals/internal/config"
	"github.com/jask/kikaportals/internal/database"
	"github.com/jask/kikaportals/internal/database/repository"
	"github.com/jask/kikaportals/internal/logging"
	"github.com/jask/kikaportals/internal/portal"
	"github.com/jask/kikaportals/internal/service"
	"github.com/jask/kikaportals/internal/tui"
)

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. The bare command opens the portal.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kikaportals",
		Short: "Job portal in the terminal",
		Long: `Kikaportals lets you browse open positions, apply with a resume,
and check the status of earlier applications.`,
		SilenceUsage: true,
		RunE:         runPortal,
	}
	root.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/kikaportals/config.toml)")

	root.AddCommand(newJobsCmd(), newApplicationsCmd(), newConfigCmd())
	return root
}

// env is what every command needs once config is read.
type env struct {
	cfg    config.Config
	log    zerolog.Logger
	db     *sql.DB
	jobs   *repository.JobRepo
	apps   *repository.ApplicationRepo
	closer io.Closer
}

func (e *env) Close() {
	if e.db != nil {
		_ = e.db.Close()
	}
	_ = e.closer.Close()
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

func openEnv(ctx context.Context, cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	db, err := database.OpenCatalog(ctx, cfg.Catalog.DSN, cfg.Catalog.SeedFile)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return &env{
		cfg:    cfg,
		log:    log,
		db:     db,
		jobs:   repository.NewJobRepo(db),
		apps:   repository.NewApplicationRepo(db),
		closer: closer,
	}, nil
}

func runPortal(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	e, err := openEnv(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	ctrl := portal.NewController(e.log)
	catalog := tui.Catalog{
		Jobs:         &service.JobSearch{Jobs: e.jobs},
		Applications: e.apps,
	}

	var opts []tea.ProgramOption
	if e.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	e.log.Info().Msg("portal start")
	p := tea.NewProgram(tui.New(ctx, e.cfg, catalog, ctrl, e.log), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run portal: %w", err)
	}
	e.log.Info().Msg("portal exit")
	return nil
}
