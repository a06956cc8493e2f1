package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "unknown"
)

func newRootCommand() *cobra.Command {
	var (
		cfgPath string
		verbose bool
		log     *zap.Logger
	)

	var root *cobra.Command
	root = &cobra.Command{
		Use:          "molcore",
		Short:        "molcore inspects small molecules for rings and aromaticity",
		Long:         "molcore builds a named fixture molecule, runs the normalisation pipeline over it, and reports the rings, ring systems and aromaticity it found.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCLIConfig(cfgPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if !root.PersistentFlags().Changed("verbose") && cfg.Verbose {
				verbose = true
			}

			var zcfg zap.Config
			if verbose {
				zcfg = zap.NewDevelopmentConfig()
			} else {
				zcfg = zap.NewProductionConfig()
				zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
			}
			built, err := zcfg.Build()
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			log = built
			cmd.SetContext(withLogger(context.Background(), log))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("molcore %s (%s)\n", version, commit))
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a TOML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newNormaliseCommand())
	root.AddCommand(newListCommand())

	return root
}

type loggerKey struct{}

func withLogger(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

func loggerFromContext(ctx context.Context) *zap.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}
