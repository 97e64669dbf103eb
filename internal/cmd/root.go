// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/opmodel/jproj/internal/cmdtypes"
	"github.com/opmodel/jproj/internal/config"
	"github.com/opmodel/jproj/internal/output"
)

// globalFlags holds the persistent flag values of the root command.
type globalFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the jproj CLI. Running it without
// a subcommand scaffolds a project.
func NewRootCmd() *cobra.Command {
	cfg := &cmdtypes.GlobalConfig{}
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "jproj [flags] [package...]",
		Short: "Scaffold a Java project from a directory template",
		Long: heredoc.Doc(`
			jproj creates the directory layout of a Java project from a template.

			The template is read from a file in the root directory whose name
			contains "template_paths" and ends in ".json". The file holds a JSON
			object mapping a name to a list of relative paths:

			  {"default": ["src/main/java", "src/test/java", "doc"]}

			Without such a file a built-in Gradle-style layout is used. Every
			template directory named "java" is a package root: requested packages
			are created below each of them, optionally with an entry file.
		`),
		Example: heredoc.Doc(`
			# Scaffold in the current directory after confirming it
			jproj

			# Create ./MyProj with packages foo and bar and their entry files
			jproj -y --new MyProj --packages foo,bar --files

			# Same, packages given as arguments, report as JSON
			jproj -C ~/work -n MyProj -f -o json foo bar
		`),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: JPROJ_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	addCreateFlags(rootCmd, cfg)

	rootCmd.AddCommand(NewTemplateCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *globalFlags) error {
	pathResult, pathErr := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: flags.config,
	})

	var loadErr error
	loaded := config.DefaultConfig()
	if pathErr == nil {
		cfg.ConfigPath = pathResult.ConfigPath
		var l *config.Config
		l, loadErr = config.NewLoader().LoadWithDefaults(pathResult.ConfigPath)
		if loadErr == nil {
			loaded = l
		}
	}

	cfg.Config = loaded

	// Resolve timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	// Commands that do not need config keep working on defaults.
	switch {
	case pathErr != nil:
		output.Debug("config path not resolved", "err", pathErr)
	case loadErr != nil:
		output.Warn("config not loaded, using defaults", "path", pathResult.ConfigPath, "err", loadErr)
	default:
		pathResult.LogResolved()
	}

	output.Debug("initializing CLI",
		"config", cfg.ConfigPath,
		"marker", loaded.Template.Marker,
		"extension", loaded.Template.Extension,
		"packageRoot", loaded.Layout.PackageRoot,
	)

	return nil
}
