package logging

import (
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// LogPanic records a panic with its stack trace and runtime details, then
// re-panics. It must be deferred directly:
//
//	defer logging.LogPanic(&logger)
func LogPanic(logger *zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	if logger != nil {
		logPanic(logger, r, debug.Stack())
	}
	panic(r)
}

func logPanic(logger *zerolog.Logger, r any, stack []byte) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	logger.WithLevel(zerolog.FatalLevel).
		Interface("panic", r).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Int("goroutines", runtime.NumGoroutine()).
		Uint64("alloc_kb", m.Alloc/1024).
		Uint64("sys_kb", m.Sys/1024).
		Bytes("stack", stack).
		Msg("panic")
}
