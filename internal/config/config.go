// Package config holds globally available configuration values, either
// set by defaults, read from a TOML config file, or overridden by
// command-line flags in cmd/gambit.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/corvidchess/gambit/internal/util"
)

// LogLevels maps a CLI/TOML log level name to an op/go-logging level
// constant understood by internal/logging.
var LogLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

var (
	// ConfFile is the path to the TOML config file to load.
	ConfFile = "./config.toml"

	// LogLevel is the general engine log level.
	LogLevel = LogLevels["info"]

	// SearchLogLevel is the level for the dedicated search logger.
	SearchLogLevel = LogLevels["info"]

	// Settings holds the decoded configuration tree.
	Settings conf

	initialized = false
)

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup loads ConfFile (if present) into Settings, falling back to the
// compiled-in defaults from searchconfig.go/evalconfig.go otherwise.
// Safe to call more than once; only the first call has effect.
func Setup() {
	if initialized {
		return
	}
	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("config file not found, using defaults:", err)
	}
	setupSearch()
	setupEval()
	initialized = true
}
