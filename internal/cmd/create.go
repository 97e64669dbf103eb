package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opmodel/jproj/internal/cmdtypes"
	"github.com/opmodel/jproj/internal/config"
	oerrors "github.com/opmodel/jproj/internal/errors"
	"github.com/opmodel/jproj/internal/layout"
	"github.com/opmodel/jproj/internal/output"
	"github.com/opmodel/jproj/internal/prompt"
	"github.com/opmodel/jproj/internal/scaffold"
)

// createOptions holds the flags of the scaffolding run.
type createOptions struct {
	newProject string
	packages   []string
	files      bool
	dir        string
	yes        bool
	output     string
}

// addCreateFlags registers the scaffolding flags on c and makes it run the
// scaffolding when invoked.
func addCreateFlags(c *cobra.Command, cfg *cmdtypes.GlobalConfig) {
	opts := &createOptions{}

	c.Flags().StringVarP(&opts.newProject, "new", "n", "", "Create the project in a new directory with this name (without it, the confirmed root is the project root)")
	c.Flags().StringSliceVarP(&opts.packages, "packages", "p", nil, "Package names to create under every package root")
	c.Flags().BoolVarP(&opts.files, "files", "f", false, "Write an entry file into every package directory")
	c.Flags().StringVarP(&opts.dir, "dir", "C", "", "Root directory; skips the confirmation prompt")
	c.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Use the current directory without prompting")
	c.Flags().StringVarP(&opts.output, "output", "o", "text", "Report format: text, json, yaml")

	c.RunE = func(c *cobra.Command, args []string) error {
		return runCreate(c, args, cfg, opts)
	}
}

func runCreate(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, opts *createOptions) error {
	format, err := output.ParseOutputFormat(opts.output)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitValidationError)
	}

	conf := cfg.Config
	if conf == nil {
		conf = config.DefaultConfig()
	}
	if err := config.Validate(conf); err != nil {
		return oerrors.NewExitError(fmt.Errorf("invalid configuration: %w", err), oerrors.ExitValidationError)
	}

	packages := append(append([]string{}, opts.packages...), args...)

	root, err := confirmRoot(c, opts)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	report, err := scaffold.Run(scaffold.Options{
		Root:        root,
		NewProject:  opts.newProject,
		Packages:    packages,
		CreateFiles: opts.files,
		Sentinel:    conf.Layout.PackageRoot,
		Extension:   conf.Entry.Extension,
		Separator:   layout.HostSeparator,
		Resolve: layout.ResolveOptions{
			Marker:    conf.Template.Marker,
			Extension: conf.Template.Extension,
			Key:       conf.Template.Key,
		},
	})
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	if err := writeReport(c.OutOrStdout(), report, format); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if failed := report.FileFailures(); len(failed) > 0 {
		return oerrors.NewExitError(
			fmt.Errorf("%d of %d entry files could not be written", len(failed), len(report.Files)),
			oerrors.ExitGeneralError,
		)
	}

	return nil
}

// confirmRoot returns the root directory: --dir, the working directory with
// --yes, or the operator's answer to the confirmation prompt.
func confirmRoot(c *cobra.Command, opts *createOptions) (string, error) {
	if opts.dir != "" {
		return config.ExpandPath(opts.dir)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	if opts.yes {
		return cwd, nil
	}

	answer, err := prompt.NewConfirmer(c.InOrStdin(), c.ErrOrStderr()).ConfirmRoot(cwd)
	if err != nil {
		return "", err
	}

	root, err := config.ExpandPath(answer)
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", answer, err)
	}

	if _, statErr := os.Stat(root); errors.Is(statErr, os.ErrNotExist) {
		output.Warn("specified path does not exist, will attempt to create", "path", root)
	}

	return root, nil
}

// writeReport renders report as a tree or encodes it.
func writeReport(w io.Writer, report *scaffold.Report, format output.OutputFormat) error {
	if format != output.FormatText {
		return output.Encode(w, format, report)
	}

	var entries []output.TreeEntry
	for _, o := range report.Directories {
		if o.Rel == "" {
			continue
		}
		entries = append(entries, output.TreeEntry{Path: o.Rel, Description: statusText(o.Status), IsDir: true})
	}
	for _, o := range report.Packages {
		entries = append(entries, output.TreeEntry{Path: o.Rel, Description: statusText(o.Status), IsDir: true})
	}
	for _, f := range report.Files {
		entries = append(entries, output.TreeEntry{Path: f.Rel, Description: statusText(f.Status)})
	}

	if tree := output.RenderFileTree(filepath.Base(report.ProjectRoot), entries); tree != "" {
		fmt.Fprintln(w, tree)
	}

	source := report.TemplateName
	if report.TemplateFile != "" {
		source = fmt.Sprintf("%s (%s)", report.TemplateName, report.TemplateFile)
	}

	failures := len(report.Failures()) + len(report.FileFailures())
	summary := fmt.Sprintf("Project created in %s from template %s", report.ProjectRoot, source)
	if failures > 0 {
		fmt.Fprintln(w, output.StyleSummary.Render(fmt.Sprintf("%s with %d failures", summary, failures)))
		for _, o := range report.Failures() {
			fmt.Fprintln(w, output.FormatStatusLine(o.Rel, output.StatusFailed), o.Message)
		}
		for _, f := range report.FileFailures() {
			fmt.Fprintln(w, output.FormatStatusLine(f.Rel, output.StatusFailed), f.Message)
		}
		return nil
	}

	fmt.Fprintln(w, output.FormatCheckmark(summary))
	return nil
}

func statusText(s scaffold.Status) string {
	return output.StatusStyle(string(s)).Render(string(s))
}
