package main

import (
	"os"

	"github.com/campustools/gradepoint/internal/pkg/logger" // Still needed for initial error logging
	"github.com/campustools/gradepoint/internal/server"
)

// @title Gradepoint API
// @version 1.0
// @description API backing the GPA calculator widget: course tables, row lifecycle and GPA summaries
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@campustools.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// Initialize the server with all its dependencies
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	// If Run completes without error, graceful shutdown was successful.
	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
