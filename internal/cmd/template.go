package cmd

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/opmodel/jproj/internal/cmdtypes"
	"github.com/opmodel/jproj/internal/config"
	oerrors "github.com/opmodel/jproj/internal/errors"
	"github.com/opmodel/jproj/internal/layout"
	"github.com/opmodel/jproj/internal/output"
)

// NewTemplateCmd creates the template command group.
func NewTemplateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "template",
		Short: "Inspect directory templates",
		Long:  `Inspect the directory template jproj would use in a root directory.`,
	}

	c.AddCommand(newTemplateShowCmd(cfg))
	c.AddCommand(newTemplateDiffCmd(cfg))

	return c
}

func newTemplateShowCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var dir, outputFlag string

	c := &cobra.Command{
		Use:   "show",
		Short: "Show the template resolved in a directory",
		Long: heredoc.Doc(`
			Show the template resolved in a directory.

			Prints the override template found in the directory, or the built-in
			default when there is none. Paths are shown with the host separator.
		`),
		Example: heredoc.Doc(`
			# Show the template for the current directory
			jproj template show

			# Show it as JSON
			jproj template show -C ~/work -o json
		`),
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			format, err := output.ParseOutputFormat(outputFlag)
			if err != nil {
				return oerrors.NewExitError(err, oerrors.ExitValidationError)
			}

			res, err := resolveTemplate(cfg, dir)
			if err != nil {
				return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
			}
			tmpl := layout.Normalize(res.TemplateOrDefault(), layout.HostSeparator)

			if format != output.FormatText {
				return output.Encode(c.OutOrStdout(), format, tmpl)
			}

			name := tmpl.Name
			if tmpl.File != "" {
				name = fmt.Sprintf("%s (%s)", tmpl.Name, tmpl.File)
			}
			fmt.Fprintln(c.OutOrStdout(), output.StyleBold.Render("template: ")+output.StyleNoun.Render(name))
			if tree := output.RenderSimpleTree(".", tmpl.Paths); tree != "" {
				fmt.Fprintln(c.OutOrStdout(), tree)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&dir, "dir", "C", "", "Directory to resolve the template in (default: current directory)")
	c.Flags().StringVarP(&outputFlag, "output", "o", "text", "Output format: text, json, yaml")

	return c
}

func newTemplateDiffCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var dir string

	c := &cobra.Command{
		Use:   "diff",
		Short: "Compare the override template with the default",
		Long: heredoc.Doc(`
			Compare the override template found in a directory with the built-in
			default template.

			Nothing is compared when the directory has no override file.
		`),
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			res, err := resolveTemplate(cfg, dir)
			if err != nil {
				return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
			}

			if !res.Found {
				fmt.Fprintln(c.OutOrStdout(), "No override template found, the default template is used.")
				return nil
			}

			report, err := layout.Diff(layout.Default(), res.Template, output.IsTTY())
			if err != nil {
				return fmt.Errorf("comparing templates: %w", err)
			}

			if report == "" {
				fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Override template matches the default template."))
				return nil
			}

			fmt.Fprintln(c.OutOrStdout(), report)
			return nil
		},
	}

	c.Flags().StringVarP(&dir, "dir", "C", "", "Directory to resolve the template in (default: current directory)")

	return c
}

// resolveTemplate resolves the template in dir using the loaded config.
func resolveTemplate(cfg *cmdtypes.GlobalConfig, dir string) (*layout.Resolution, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		dir = cwd
	}

	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", dir, err)
	}

	conf := cfg.Config
	if conf == nil {
		conf = config.DefaultConfig()
	}

	return layout.Resolve(expanded, layout.ResolveOptions{
		Marker:    conf.Template.Marker,
		Extension: conf.Template.Extension,
		Key:       conf.Template.Key,
	})
}
