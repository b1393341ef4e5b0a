// Package logging provides structured logging utilities for firmware-stamp components.
//
// # Overview
//
// This package wraps the standard library slog package with toolchain-wide
// defaults and conventions for consistent logging across all components. It
// supports environment-based log level configuration, module/version context
// injection, and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("sigil", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("stamping image", "path", path)
//	    slog.Debug("detailed state", "record", fmt.Sprintf("%x", record))
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("sigild", "v2.0.0", "debug")
//	logger.Info("server starting", "port", 8080)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("sigil", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug sigil stamp --git bmc.img
//	LOG_LEVEL=error sigild
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "image stamped",
//	    "module": "sigil",
//	    "version": "v1.0.0",
//	    "path": "build/bmc.img"
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "main.stampImage",
//	        "file": "stamp.go",
//	        "line": 45
//	    },
//	    "msg": "record written",
//	    "module": "sigil",
//	    "version": "v1.0.0"
//	}
//
// # Integration
//
// This package is used by:
//   - pkg/api - release service logging
//   - pkg/cli - CLI command logging
//   - pkg/stamp - image stamping logging
//   - pkg/oci - registry push logging
//
// The core pkg/semver package never logs; only the tooling around it does.
package logging
