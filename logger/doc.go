// Package logger provides structured logging for xduce using zerolog.
//
// It supports JSON and console output, level configuration, component-scoped
// loggers, and picks up trace and run identifiers from a context. Logs go to
// stderr by default so that stdout stays free for pipeline output.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("pipeline")
//	log.Info("run finished", logger.Fields(logger.FieldItemsOut, 12))
package logger
