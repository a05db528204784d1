package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names recognised by LoadEnvOverride
const (
	EnvRootDir        = "DOCFS_ROOT"
	EnvNamespace      = "DOCFS_NAMESPACE"
	EnvTitle          = "DOCFS_TITLE"
	EnvSummary        = "DOCFS_SUMMARY"
	EnvMimeTypes      = "DOCFS_MIME_TYPES" // comma separated
	EnvStorage        = "DOCFS_STORAGE"
	EnvListenAddr     = "DOCFS_LISTEN"
	EnvStatWorkers    = "DOCFS_STAT_WORKERS"
	EnvDefaultSort    = "DOCFS_SORT"
	EnvMemoryCapacity = "DOCFS_MEMORY_CAPACITY"
	EnvVerbose        = "DOCFS_VERBOSE"
)

// LoadEnvOverride builds an override from DOCFS_* variables. Values set in the
// process environment win over values read from the dotenv file at path.
// An empty path reads the process environment only.
func LoadEnvOverride(path string) (*ConfigOverride, error) {
	fileVars := map[string]string{}
	if path != "" {
		vars, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file: %w", err)
		}
		fileVars = vars
	}
	return envOverride(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	})
}

func envOverride(lookup func(string) (string, bool)) (*ConfigOverride, error) {
	var o ConfigOverride
	str := func(key string, dst **string) {
		if v, ok := lookup(key); ok {
			*dst = &v
		}
	}
	str(EnvRootDir, &o.RootDir)
	str(EnvNamespace, &o.Namespace)
	str(EnvTitle, &o.Title)
	str(EnvSummary, &o.Summary)
	str(EnvStorage, &o.Storage)
	str(EnvListenAddr, &o.ListenAddr)
	str(EnvDefaultSort, &o.DefaultSort)

	if v, ok := lookup(EnvMimeTypes); ok {
		var types []string
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
		o.MimeTypes = &types
	}
	if v, ok := lookup(EnvStatWorkers); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvStatWorkers, err)
		}
		o.StatWorkers = &n
	}
	if v, ok := lookup(EnvVerbose); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvVerbose, err)
		}
		o.LogLvl = &n
	}
	if v, ok := lookup(EnvMemoryCapacity); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvMemoryCapacity, err)
		}
		o.MemoryCapacity = &n
	}
	return &o, nil
}
