package cmd

import (
	"strings"

	"github.com/MayurKasidariya/IdentityServerDemo/internal/bootstrap"
	"github.com/MayurKasidariya/IdentityServerDemo/internal/config"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "idsconfig",
	Short: "Configuration and bootstrap host for the demo identity server.",
	Long:  `Seeds the identity server's configuration and identity stores from the built-in declarative model, then serves a read-only view of the installed configuration.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Get config
		log.Info().Msg("Parsing config")
		var cfg config.Config
		parseErr := viper.Unmarshal(&cfg)
		HandleError(parseErr, "Failed to parse config")

		// Log level
		level, levelErr := zerolog.ParseLevel(cfg.LogLevel)
		HandleError(levelErr, "Invalid log level")
		zerolog.SetGlobalLevel(level)

		// Validate config
		log.Info().Msg("Validating config")
		validate := validator.New()
		validateErr := validate.Struct(cfg)
		HandleError(validateErr, "Invalid config")

		// Bootstrap
		app := bootstrap.NewBootstrapApp(cfg)
		HandleError(app.Setup(), "Failed to start")
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to execute command")
	}
}

func HandleError(err error, msg string) {
	if err != nil {
		log.Fatal().Err(err).Msg(msg)
	}
}

func init() {
	rootCmd.Flags().Int("port", 3000, "Port to run the server on.")
	rootCmd.Flags().String("address", "0.0.0.0", "Address to bind the server to.")
	rootCmd.Flags().String("database-path", "./idsconfig.db", "Path to the sqlite database file.")
	rootCmd.Flags().String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal, panic).")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.BindPFlags(rootCmd.Flags())
}
