package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/jproj/internal/cmdtypes"
	"github.com/opmodel/jproj/internal/config"
	oerrors "github.com/opmodel/jproj/internal/errors"
	"github.com/opmodel/jproj/internal/output"
)

// configHeader is written above the generated config file.
const configHeader = "# jproj configuration\n# Environment variables JPROJ_<SECTION>_<KEY> override these values.\n\n"

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the jproj CLI.`,
	}

	c.AddCommand(newConfigInitCmd(cfg))
	c.AddCommand(newConfigVetCmd(cfg))

	return c
}

func newConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with default values",
		Long: heredoc.Doc(`
			Create a jproj configuration file with default values.

			The configuration file is created at ~/.jproj/config.yaml by default.
			Use the --config flag or JPROJ_CONFIG to choose another location.
		`),
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runConfigInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	path, err := configPath(cfg)
	if err != nil {
		return err
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}

	if exists && !force {
		return oerrors.NewExitError(
			fmt.Errorf("config file already exists at %s (use --force to overwrite)", path),
			oerrors.ExitGeneralError,
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+path))
	return nil
}

func newConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: heredoc.Doc(`
			Validate the jproj configuration file.

			The config path is resolved using precedence:
			  --config flag > JPROJ_CONFIG env > ~/.jproj/config.yaml
		`),
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigVet(c, cfg)
		},
	}
}

func runConfigVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	path, err := configPath(cfg)
	if err != nil {
		return err
	}

	output.Debug("validating config", "path", path)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return oerrors.NewExitError(
			oerrors.NewNotFoundError("configuration file not found", path, "Run 'jproj config init' to create default configuration"),
			oerrors.ExitNotFound,
		)
	}

	loaded, err := config.NewLoader().LoadWithDefaults(path)
	if err != nil {
		return oerrors.NewExitError(
			oerrors.NewValidationError(err.Error(), path, "", "Check the YAML syntax of the configuration file."),
			oerrors.ExitValidationError,
		)
	}

	if err := config.Validate(loaded); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			fmt.Fprintln(c.ErrOrStderr(), "Error: config validation failed")
			fmt.Fprintf(c.ErrOrStderr(), "  File: %s\n\n", path)
			for _, e := range verrs {
				fmt.Fprintf(c.ErrOrStderr(), "  %s: %s\n", e.Field, e.Message)
			}
			return &oerrors.ExitError{Err: err, Code: oerrors.ExitValidationError, Printed: true}
		}
		return fmt.Errorf("validating config: %w", err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file is valid: "+path))
	return nil
}

// configPath returns the expanded config path resolved at startup.
func configPath(cfg *cmdtypes.GlobalConfig) (string, error) {
	path := cfg.ConfigPath
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return "", fmt.Errorf("getting config file path: %w", err)
		}
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("expanding config path: %w", err)
	}
	return expanded, nil
}
