package cli

import (
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspbb/internal/cache"
	"github.com/katalvlaran/tspbb/internal/config"
	"github.com/katalvlaran/tspbb/internal/server"
)

const shutdownGrace = 10 * time.Second

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		addr      string
		backend   string
		timeout   time.Duration
		maxCities int
		maxNodes  int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP solve service",
		Long: `Serve POST /solve, GET /healthz and GET /metrics.

Precedence, highest first: flags, TSPBB_* environment variables, the
--config file, built-in defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.LoadConfig(root.configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Addr = addr
			}
			if flags.Changed("cache") {
				cfg.Cache.Backend = backend
			}
			if flags.Changed("timeout") {
				cfg.SolveTimeout = timeout
			}
			if flags.Changed("max-cities") {
				cfg.MaxCities = maxCities
			}
			if flags.Changed("max-nodes") {
				cfg.MaxNodes = maxNodes
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := loggerFromContext(ctx)
			if !root.verbose {
				if lvl, err := charmlog.ParseLevel(cfg.LogLevel); err == nil {
					logger.SetLevel(lvl)
				}
			}

			c, err := cache.New(ctx, cfg.Cache)
			if err != nil {
				return err
			}
			logger.Debug("config",
				"addr", cfg.Addr,
				"cache", cfg.Cache.Backend,
				"max_cities", cfg.MaxCities,
				"solve_timeout", cfg.SolveTimeout,
				"frontier", cfg.Frontier,
			)

			return server.New(cfg, c, logger).Run(ctx, shutdownGrace)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8000)")
	cmd.Flags().StringVar(&backend, "cache", "", "result cache: none, file, redis")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-request solve deadline (0 disables)")
	cmd.Flags().IntVar(&maxCities, "max-cities", 0, "reject larger instances")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "node budget per solve (0 = unlimited)")

	return cmd
}
