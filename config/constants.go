package config

import (
	"os"
	"path/filepath"

	"github.com/brettbedarf/docfs/internal/util"
)

// Bytes per MB
const MB = 1024 * 1024

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultNamespace  = "textdocument"
	DefaultTitle      = "Text Documents"
	DefaultSummary    = "Plain text documents stored on this device"
	DefaultMimeType   = "text/plain"
	DefaultStorage    = "local"
	DefaultListenAddr = "127.0.0.1:8080"

	// DefaultStatWorkers bounds concurrent stats during a child listing
	DefaultStatWorkers = 8

	// DefaultSort keeps the storage's native enumeration order
	DefaultSort = ""

	// DefaultMemoryCapacity is the size reported by the in-memory backend
	DefaultMemoryCapacity = 64 * MB

	DefaultLogLvl = util.InfoLevel
)

// CLI verbosity values, 1 (error) through 5 (trace)
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// DefaultRootDir returns the Documents folder in the user's home directory,
// falling back to a Documents folder under the working directory.
func DefaultRootDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		if wd, err := os.Getwd(); err == nil {
			return filepath.Join(wd, "Documents")
		}
		return "Documents"
	}
	return filepath.Join(home, "Documents")
}

// verbosityToLevel clamps v into 1..5 and maps it onto a util.LogLevel
func verbosityToLevel(v int) util.LogLevel {
	v = max(ErrorVerbose, min(v, TraceVerbose))
	lvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return lvls[v-1]
}
