package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/city-team-dashboard/internal/config"
	"github.com/preston-bernstein/city-team-dashboard/internal/dashboard"
	"github.com/preston-bernstein/city-team-dashboard/internal/logging"
	"github.com/preston-bernstein/city-team-dashboard/internal/metrics"
	"github.com/preston-bernstein/city-team-dashboard/internal/render"
	"github.com/preston-bernstein/city-team-dashboard/internal/server"
	"github.com/preston-bernstein/city-team-dashboard/internal/setup"
	"github.com/preston-bernstein/city-team-dashboard/internal/theme"
)

const setupCommand = "dashboard setup --city <city> --team <team>"

// cli carries the state shared by every subcommand once the root has loaded config.
type cli struct {
	cfg      config.Config
	logger   *slog.Logger
	provider string
	logLevel string
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Personalized city and team dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c.load(cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.provider, "provider", "", "data provider: live or fixture (overrides PROVIDER)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	root.AddCommand(
		c.serveCmd(),
		c.showCmd(),
		c.setupCmd(),
		c.themeCmd(),
	)
	return root
}

func (c *cli) load(logOut io.Writer) {
	c.cfg = config.Load()
	if c.provider != "" {
		c.cfg.Provider = c.provider
	}
	if c.logLevel != "" {
		c.cfg.Logging.Level = c.logLevel
	}
	c.logger = logging.NewLogger(logging.Config{
		Level:   c.cfg.Logging.Level,
		Format:  c.cfg.Logging.Format,
		Service: "city-team-dashboard",
		Version: appVersion,
		Output:  logOut,
	})
}

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if os.Getenv("SKIP_SERVER_RUN") == "1" {
				return nil
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(c.cfg, c.logger)
			srv.Run(ctx, stop)
			return nil
		},
	}
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Refresh once and print the dashboard for the saved preference",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withDashboard(func(flow *setup.Flow, orch *dashboard.Orchestrator) error {
				out := cmd.OutOrStdout()
				if flow.Visible() {
					_, err := fmt.Fprintln(out, render.New(out).SetupPrompt(setupCommand))
					return err
				}
				flow.Start()
				return printDashboard(out, orch)
			})
		},
	}
}

func (c *cli) setupCmd() *cobra.Command {
	var city, team string
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Save a city and team, then print the refreshed dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withDashboard(func(flow *setup.Flow, orch *dashboard.Orchestrator) error {
				out := cmd.OutOrStdout()
				if !flow.Submit(city, team) {
					flow.Edit()
					current := flow.Preference()
					prompt := render.New(out).SetupPrompt(setupCommand)
					_, err := fmt.Fprintf(out, "%s\ncurrent: city=%q team=%q\n", prompt, current.City, current.Team)
					return err
				}
				return printDashboard(out, orch)
			})
		},
	}
	cmd.Flags().StringVar(&city, "city", "", "city to follow")
	cmd.Flags().StringVar(&team, "team", "", "team to follow")
	return cmd
}

func (c *cli) themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme <team>",
		Short: "Print the color theme derived for a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, err := fmt.Fprintln(out, render.New(out).Theme(args[0], theme.Apply(args[0])))
			return err
		},
	}
}

// withDashboard wires the preference store, sources and orchestrator for one-shot commands.
func (c *cli) withDashboard(fn func(flow *setup.Flow, orch *dashboard.Orchestrator) error) error {
	store, closePrefs := server.Preferences(c.cfg, c.logger)
	defer func() {
		if err := closePrefs(); err != nil {
			logging.Warn(c.logger, "preference slot close failed", "error", err)
		}
	}()

	recorder := metrics.NewRecorder()
	orch := dashboard.New(server.Sources(c.cfg, c.logger, recorder), nil, c.logger, recorder)
	defer orch.Close()

	return fn(setup.New(store, orch, c.logger), orch)
}

func printDashboard(out io.Writer, orch *dashboard.Orchestrator) error {
	orch.Wait()
	view, ok := orch.Store().Current()
	if !ok {
		return fmt.Errorf("dashboard: no view published")
	}
	_, err := fmt.Fprintln(out, render.New(out).Dashboard(view))
	return err
}
