// Package cli implements the quickconf command line: the HTTP server and the
// offline schedule commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"quickconf/config"
	"quickconf/internal/domain"
	"quickconf/internal/repository/files"
	"quickconf/internal/services"
)

type rootOptions struct {
	contentDir string
	demo       bool
	clock      clockwork.Clock
}

// app is the wiring shared by every command.
type app struct {
	cfg      *config.Config
	site     *config.SiteConfig
	logger   *slog.Logger
	clock    clockwork.Clock
	content  *files.ContentRepository
	schedule domain.ScheduleService
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCommand builds the quickconf command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(clockwork.NewRealClock())
}

func newRootCommand(clock clockwork.Clock) *cobra.Command {
	opts := &rootOptions{clock: clock}
	cmd := &cobra.Command{
		Use:   "quickconf",
		Short: "Conference schedule service",
		Long: `quickconf serves a conference schedule built from markdown and YAML content
files: a JSON API, an HTML schedule grid, an iCalendar feed and a live "now" stream.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.contentDir, "content-dir", "", "content directory (overrides CONTENT_DIR)")
	cmd.PersistentFlags().BoolVar(&opts.demo, "demo", false, "simulate the clock from 13:20 on the active day (overrides DEMO_MODE)")

	cmd.AddCommand(
		newServeCommand(opts),
		newDaysCommand(opts),
		newDayCommand(opts),
		newICSCommand(opts),
	)
	return cmd
}

// newApp loads configuration and content for cmd. Flags override the environment.
func newApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("content-dir") {
		cfg.ContentDir = opts.contentDir
	}
	if flags.Changed("demo") {
		cfg.DemoMode = opts.demo
	}

	logger := config.NewLogger(cmd.ErrOrStderr())
	site, err := config.LoadSite(cfg.ContentDir)
	if err != nil {
		return nil, err
	}

	content := files.NewContentRepository(cfg.ContentDir, logger)
	if err := content.Load(cmd.Context()); err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	svc, err := services.NewScheduleService(content, site, logger, opts.clock, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("schedule service: %w", err)
	}
	return &app{
		cfg:      cfg,
		site:     site,
		logger:   logger,
		clock:    opts.clock,
		content:  content,
		schedule: svc,
	}, nil
}
