package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bura/internal/config"
	"bura/internal/logging"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Fitness questionnaire in the terminal",
	Long: `quiz walks you through the coaching questionnaire, saves your answers
through the lead API and prints a WhatsApp link to continue with the coach.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		// The terminal belongs to the questionnaire; only warnings and up.
		logger, err = logging.New(cfg.AppEnv, "warn")
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(flowsCmd)
}

func initConfig() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()
}
