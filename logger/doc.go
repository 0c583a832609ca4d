// Package logger provides structured logging for prism using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get(logger.ComponentKeystore)
//	log.Info("keys loaded", logger.Fields(logger.FieldCount, 1234))
package logger
