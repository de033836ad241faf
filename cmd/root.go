package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/joho/godotenv/autoload"

	"github.com/leofalp/calcgo/core/engine"
	"github.com/leofalp/calcgo/providers/history/inmemory"
	obslog "github.com/leofalp/calcgo/providers/observability/slog"
	"github.com/leofalp/calcgo/providers/operation"
	"github.com/leofalp/calcgo/providers/operation/advanced"
	"github.com/leofalp/calcgo/providers/operation/arithmetic"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "calcgo",
	Short:   "An extensible arithmetic evaluator",
	Long:    `calcgo evaluates named binary arithmetic operations resolved from a catalog. New operations are added by registration, never by editing existing ones.`,
	Version: version,
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newEvaluator builds the full evaluator used by the commands: the basic
// arithmetic catalog merged with the advanced operations, slog-backed
// observability at the level configured via CALCGO_LOG_LEVEL, and an
// in-memory history store. Set CALCGO_STRICT=1 to make the catalog reject
// duplicate registrations instead of replacing them.
func newEvaluator() (*engine.Evaluator, error) {
	var opts []operation.CatalogOption
	if os.Getenv("CALCGO_STRICT") == "1" {
		opts = append(opts, operation.WithRejectDuplicates())
	}

	catalog := operation.NewCatalog(opts...)
	if err := catalog.Merge(arithmetic.Catalog()); err != nil {
		return nil, err
	}
	if err := catalog.Merge(advanced.Catalog()); err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: obslog.GetLogLevelFromEnv(),
	}))

	return engine.New(catalog,
		engine.WithObservability(obslog.New(logger)),
		engine.WithHistory(inmemory.New()),
	), nil
}
