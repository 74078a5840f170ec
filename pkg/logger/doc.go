// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key names consistent across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	).With(logger.Component("verify.compiler"))
//	log.Warn("validator compilation failed", logger.Error(err), logger.Rule("not_null"), logger.Shape(t))
//
// Libraries that log only on request start from Discard and swap in a real
// logger once the application configures one.
//
// ParseLevel and ParseFormat turn configuration strings (for example values read
// from the environment) into typed options.
package logger
