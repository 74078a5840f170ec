package compiler

import (
	"log/slog"
	"sync/atomic"

	"github.com/dmitrymomot/verify/pkg/logger"
)

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(logger.Discard())
}

// SetLogger replaces the logger used for compilation traces. Nil restores the discard logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = logger.Discard()
	}
	pkgLogger.Store(l.With(logger.Component("verify.compiler")))
}

func log() *slog.Logger {
	return pkgLogger.Load()
}
