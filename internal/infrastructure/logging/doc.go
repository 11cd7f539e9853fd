// Package logging wraps log/slog for the netweave daemon.
//
// Every record carries the service name and version as default fields.
// Output format (json for machines, text for humans), level, and
// destination come from the logging section of config.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// Usage:
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("profile added", "uuid", rec.UUID)
//
// Secret values never belong in log fields; log the profile and setting
// identity instead.
package logging
