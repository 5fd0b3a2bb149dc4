package gtkhost

import "github.com/rs/zerolog"

// GLogLevelFlags bits.
const (
	glibLevelError    = 1 << 2
	glibLevelCritical = 1 << 3
	glibLevelWarning  = 1 << 4
	glibLevelMessage  = 1 << 5
	glibLevelInfo     = 1 << 6
	glibLevelDebug    = 1 << 7
)

// glibLevel maps GLib log level flags to a zerolog level.
func glibLevel(flags int) zerolog.Level {
	switch {
	case flags&(glibLevelError|glibLevelCritical) != 0:
		return zerolog.ErrorLevel
	case flags&glibLevelWarning != 0:
		return zerolog.WarnLevel
	case flags&(glibLevelMessage|glibLevelInfo) != 0:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

func logGLib(logger *zerolog.Logger, flags int, domain, message string) {
	event := logger.WithLevel(glibLevel(flags))
	if domain != "" {
		event = event.Str("glib_domain", domain)
	}
	event.Msg(message)
}
