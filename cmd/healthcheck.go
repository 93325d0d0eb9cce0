package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck [app-url]",
	Short: "Perform a health check",
	Long:  `Use the health check endpoint to verify that the server is running and healthy.`,
	Run: func(cmd *cobra.Command, args []string) {
		appUrl := fmt.Sprintf("http://127.0.0.1:%d", viper.GetInt("port"))

		if len(args) > 0 {
			appUrl = args[0]
		}

		log.Info().Str("appUrl", appUrl).Msg("Performing health check")

		resp, err := http.Get(appUrl + "/api/health")

		if err != nil {
			log.Fatal().Err(err).Msg("Failed to perform request")
		}

		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Fatal().Err(errors.New("service is not healthy")).Msgf("Service is not healthy. Status code: %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)

		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read response")
		}

		var health healthResponse

		err = json.Unmarshal(body, &health)

		if err != nil {
			log.Fatal().Err(err).Msg("Failed to decode response")
		}

		if health.Status != "ok" {
			log.Fatal().Str("status", health.Status).Msg("Service is not healthy")
		}

		log.Info().Msg("Service is healthy")
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
