// Package logging wires up the shared op/go-logging backend used by every
// other package in the engine. Each package obtains its own named logger
// via GetLog/GetSearchLog but they all share one formatted stderr backend
// whose level is controlled by config.LogLevel / config.SearchLogLevel.
package logging

import (
	"os"

	"github.com/op/go-logging"

	"github.com/corvidchess/gambit/internal/config"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}: %{message}`,
)

var stdLog *logging.Logger
var searchLog *logging.Logger

// Level is re-exported so callers don't need to import op/go-logging
// directly just to set a level.
type Level = logging.Level

// GetLog returns the shared standard logger, initializing the backend on
// first use.
func GetLog() *logging.Logger {
	if stdLog == nil {
		stdLog = logging.MustGetLogger("gambit")
		backend := logging.NewLogBackend(os.Stderr, "", 0)
		leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
		leveled.SetLevel(logging.Level(config.LogLevel), "")
		leveled.SetLevel(logging.Level(config.SearchLogLevel), "gambit.search")
		logging.SetBackend(leveled)
	}
	return stdLog
}

// GetSearchLog returns a logger dedicated to search-internal tracing, so
// it can be leveled independently of the rest of the engine's logging.
func GetSearchLog() *logging.Logger {
	if searchLog == nil {
		searchLog = logging.MustGetLogger("gambit.search")
	}
	return searchLog
}

// SetLevel sets the level of the shared backend for the named logger
// ("" applies to all modules).
func SetLevel(lvl logging.Level, module string) {
	logging.SetLevel(lvl, module)
}
