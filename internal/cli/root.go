package cli

import (
	"github.com/brettbedarf/docfs/config"
	"github.com/brettbedarf/docfs/internal/util"
	"github.com/brettbedarf/docfs/provider"
	"github.com/brettbedarf/docfs/storage"
	"github.com/spf13/cobra"
)

// app carries flag values and the provider built for the running command
type app struct {
	configPath string
	envFile    string
	root       string
	storage    string
	verbose    int
	jsonOut    bool

	cfg      *config.Config
	provider *provider.Provider
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the full command tree with fresh flag state
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "docfs",
		Short: "Expose a directory tree as a namespace of document identifiers",
		Long: `docfs serves one directory tree as a flat namespace of opaque,
reversible document identifiers such as "textdocument:notes/a.txt".

Configuration is layered: defaults, then --config (YAML or JSON), then
DOCFS_* variables from --env-file and the environment, then flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to a YAML or JSON config file")
	flags.StringVar(&a.envFile, "env-file", "", "Path to a dotenv file with DOCFS_* variables")
	flags.StringVar(&a.root, "root", "", "Root directory to expose (default $HOME/Documents)")
	flags.StringVar(&a.storage, "storage", "", "Storage backend: local or memory")
	flags.IntVarP(&a.verbose, "verbose", "v", config.InfoVerbose, "Log verbosity between 1 (error) and 5 (trace)")
	flags.BoolVar(&a.jsonOut, "json", false, "Print results as JSON")

	rootCmd.AddCommand(
		newServeCmd(a),
		newInfoCmd(a),
		newLsCmd(a),
		newStatCmd(a),
		newResolveCmd(a),
		newCreateCmd(a),
		newRmCmd(a),
	)
	return rootCmd
}

// setup layers configuration sources, initializes logging and opens the provider
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.NewDefaultConfig()
	if a.configPath != "" {
		override, err := config.LoadConfigOverrideFile(a.configPath)
		if err != nil {
			return err
		}
		cfg.Merge(override)
	}
	envOverride, err := config.LoadEnvOverride(a.envFile)
	if err != nil {
		return err
	}
	cfg.Merge(envOverride)

	flags := cmd.Flags()
	override := &config.ConfigOverride{}
	if flags.Changed("root") {
		override.RootDir = &a.root
	}
	if flags.Changed("storage") {
		override.Storage = &a.storage
	}
	if flags.Changed("verbose") {
		override.LogLvl = &a.verbose
	}
	if flags.Changed("listen") {
		if listen, err := flags.GetString("listen"); err == nil {
			override.ListenAddr = &listen
		}
	}
	cfg.Merge(override)

	util.InitializeLogger(cfg.LogLvl, cmd.ErrOrStderr())
	logger := util.GetLogger("cli")
	logger.Debug().Str("root", cfg.Dir).Str("storage", cfg.Storage).Msg("Configuration loaded")

	storage.RegisterBuiltins()
	store, err := storage.Open(cfg)
	if err != nil {
		return err
	}
	p, err := provider.Initialize(cfg, store)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.provider = p
	return nil
}
