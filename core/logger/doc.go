// Package logger provides structured logging utilities built on Go's standard
// slog package. It offers environment-specific configurations and a set of
// pre-built attributes for common logging scenarios.
//
// # Features
//
//   - Built on Go's standard slog for compatibility and performance
//   - Environment-specific configurations (development, staging, production)
//   - Attribute helpers for common logging patterns
//   - Support for both JSON and text output formats
//   - Type-safe attribute creation with nil safety
//
// # Basic Usage
//
// Create loggers using the factory function with various configuration options:
//
//	import "github.com/interiortechnologyinc/atheme/core/logger"
//
//	// Create a development logger
//	log := logger.New(
//		logger.WithDevelopment("services"),
//	)
//
//	// Create a production logger
//	log := logger.New(
//		logger.WithProduction("services"),
//	)
//
//	// Use the logger
//	log.Info("Language catalogs loaded",
//		logger.Component("locale"),
//		logger.Event("startup"),
//	)
//
// # Environment Configurations
//
// The package provides pre-configured setups for different environments:
//
//	// Development: text format, debug level, stdout
//	devLogger := logger.New(logger.WithDevelopment("services"))
//
//	// Production: JSON format, info level, stdout
//	prodLogger := logger.New(logger.WithProduction("services"))
//
//	// Staging mirrors production
//	stageLogger := logger.New(logger.WithStaging("services"))
//
//	// Custom configuration
//	customLogger := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "translation")),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Attribute Helpers
//
// Helper functions keep attribute keys consistent across the codebase:
//
//	log.Error("Catalog load failed",
//		logger.Error(err),
//		logger.Language("de"),
//		logger.Component("catalog"),
//	)
//
//	start := time.Now()
//	// ... load catalogs ...
//	log.Info("Catalogs loaded",
//		logger.Elapsed(start),
//		logger.Count("languages", n),
//		logger.Result("success"),
//	)
//
// # Global Logger Setup
//
// Install a logger as the process default when third-party code logs via
// the slog package:
//
//	log := logger.New(logger.WithProduction("services"))
//	logger.SetAsDefault(log)
//
// # Testing with Custom Output
//
// Capture logs during testing:
//
//	var buf bytes.Buffer
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithOutput(&buf),
//	)
//
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
