package osier

import "go.uber.org/zap"

// The package logs direction flips, animation failures and easing fallbacks
// through a zap logger. The default is a no-op; hosts that want the trace
// install their own logger at startup. Like everything else here the logger
// slot is single-threaded: set it before the frame loop starts.
var logger = zap.NewNop()

// SetLogger installs the logger used for transition tracing. Passing nil
// restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop()
		return
	}
	logger = l
}

// Logger returns the current package logger.
func Logger() *zap.Logger {
	return logger
}
