package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/viant/conduit/config"
	"github.com/viant/conduit/engine"
	"github.com/viant/conduit/store"
)

var (
	// Global flags
	configPath string
	dbPath     string
	indexKind  string
	neighbors  int
	verbose    bool

	cfg    *config.Config
	logger = zap.NewNop()
)

// rootCmd runs the full session when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "conduit",
	Short: "Structural state store with operator simulations",
	Long: `conduit stores structural states as vectors (phi, tau, rho, entropy),
perturbs them with bounded operators and reports which stored states the
result lies closest to.

Run without arguments to seed an empty store, run the two canonical
simulations and enter exploration mode.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
		if dbPath != "" {
			cfg.Database.Path = dbPath
		}
		if indexKind != "" {
			cfg.Database.Index = indexKind
		}
		if neighbors > 0 {
			cfg.Query.Neighbors = neighbors
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if logger, err = newLogger(cfg.Logging.Level, verbose); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

// openStore opens the configured database. The returned closer releases it.
func openStore(ctx context.Context) (*store.SQLiteStore, func(), error) {
	kind, err := store.ParseIndexKind(cfg.Database.Index)
	if err != nil {
		return nil, nil, err
	}
	db, err := engine.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", cfg.Database.Path, err)
	}
	s, err := store.NewSQLiteStore(ctx, db,
		store.WithIndexKind(kind),
		store.WithLogger(logger),
		store.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	logger.Debug("opened store", zap.String("path", cfg.Database.Path), zap.String("index", string(kind)))
	return s, func() { _ = db.Close() }, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Configuration file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (or set CONDUIT_DB env)")
	rootCmd.PersistentFlags().StringVar(&indexKind, "index", "", "Query backend: brute, cover or sql (or set CONDUIT_INDEX env)")
	rootCmd.PersistentFlags().IntVarP(&neighbors, "neighbors", "k", 0, "Number of neighbors to report")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(reindexCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(operatorsCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(densityCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
