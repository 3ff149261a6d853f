// Package logger provides structured logging for lazystream using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers. The stream package itself never logs; the CLI
// logs around the stream operations it runs.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get(logger.ComponentCLI).WithContext(ctx)
//	log.Info("sequence realized", logger.StreamFields("primes", 10))
package logger
