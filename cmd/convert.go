// The convert command. This is the main command that orchestrates the pipeline:
// open → parse → hgroup → section → normalize → render → write.
//
// It handles flag validation, renderer selection, and --replace.

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/tohtml5/core"
	"github.com/gaurav-prasanna/tohtml5/core/fetch"
	"github.com/gaurav-prasanna/tohtml5/core/outline"
	"github.com/gaurav-prasanna/tohtml5/core/output"
	"github.com/gaurav-prasanna/tohtml5/core/parse"
	"github.com/gaurav-prasanna/tohtml5/core/pipeline"
	"github.com/gaurav-prasanna/tohtml5/core/render"
)

// Flag variables.
var (
	flagHGroup      bool
	flagSection     bool
	flagNormalize   bool
	flagReplace     bool
	flagFormat      string
	flagInputFormat string
	flagScope       string
)

var convertCmd = &cobra.Command{
	Use:   "convert [infile [outfile]]",
	Short: "Group headings, wrap sections and normalize heading ranks",
	Long: `Convert reads HTML from infile and does the following:

  - if --hgroup is given, groups sequences of headings in <hgroup> tags.
  - if --section is given, then wraps <section> tags around headings and
    the content under them.
  - if --normalize is given, finally turns every heading into a top-level
    heading, keeping the relative ranks inside each <hgroup>.

For best results:
  1. run with --hgroup
  2. manually:
     - split mistaken <hgroup>s that covered more than one multi-level heading
     - merge <hgroup>s where elements prevented grouping a multi-level heading
  3. run with --section and --normalize.

infile may be a path, "-" for stdin (the default), or an http(s) URL.
If --replace is given, the result is written back to infile.
Otherwise, if outfile is given, it is written there; otherwise to stdout.
An outfile that is a directory (or ends in "/") receives a file named after
infile with the extension of the output format.

Examples:
  tohtml5 convert --hgroup page.html
  tohtml5 convert -s -n page.html out.html
  tohtml5 convert -g -s -n --replace page.html
  tohtml5 convert -g -s --format json https://example.com
  tohtml5 convert -s --scope main notes.md`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Pass flags.
	convertCmd.Flags().BoolVarP(&flagHGroup, "hgroup", "g", false, "Group headings")
	convertCmd.Flags().BoolVarP(&flagSection, "section", "s", false, "Group sections")
	convertCmd.Flags().BoolVarP(&flagNormalize, "normalize", "n", false, "Normalize headings")

	// Output flags.
	convertCmd.Flags().BoolVarP(&flagReplace, "replace", "r", false, "Replace the original file with the output. Use with caution!")
	convertCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: html, markdown, json or pdf (default html)")

	// Input flags.
	convertCmd.Flags().StringVar(&flagInputFormat, "input-format", "", "Input format: auto, html or markdown (default auto)")
	convertCmd.Flags().StringVar(&flagScope, "scope", "", "CSS selector restricting the passes to matching elements")
}

func runConvert(cmd *cobra.Command, args []string) error {
	infile, outfile := "", ""
	if len(args) > 0 {
		infile = args[0]
	}
	if len(args) > 1 {
		outfile = args[1]
	}

	passes := selectPasses()
	if err := validateFlags(passes, infile, outfile); err != nil {
		return err
	}

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	fetcher := fetch.New(cfg.FetchTimeout, cfg.UserAgent)
	src, err := fetch.Open(cmd.Context(), infile, fetcher, cmd.InOrStdin())
	if err != nil {
		return err
	}

	parser, err := parse.ForFile(src.Name, valueOr(flagInputFormat, cfg.InputFormat))
	if err != nil {
		src.Body.Close()
		return err
	}

	logger.Debug("converting", "input", src.Name, "passes", passes.String(), "format", valueOr(flagFormat, cfg.Format))
	p := pipeline.New(passes, valueOr(flagScope, cfg.Scope), renderer, logger)
	result, err := p.Process(src.Body, parser)
	src.Body.Close()
	if err != nil {
		return err
	}

	writer := output.New(cmd.OutOrStdout())
	dest := writer.Target(outfile, src.Name, renderer.Extension())
	if flagReplace {
		dest = infile
	}
	written, err := writer.Write(dest, result.Data)
	if err != nil {
		return err
	}
	if written != output.StdoutName {
		logger.Info("written", "path", written,
			"hgroups", result.Stats.Groups,
			"sections", result.Stats.Sections,
			"headings", result.Stats.Headings,
		)
	}
	return nil
}

// selectPasses uses the pass flags when any is set, else the configured
// defaults.
func selectPasses() outline.Passes {
	if flagHGroup || flagSection || flagNormalize {
		return outline.Passes{Group: flagHGroup, Section: flagSection, Normalize: flagNormalize}
	}
	return cfg.Passes
}

// validateFlags checks that there is something to do and that --replace
// has a local file to replace.
func validateFlags(passes outline.Passes, infile, outfile string) error {
	if !passes.Any() {
		return pipeline.ErrNothingToDo
	}
	if flagReplace {
		if outfile != "" {
			return errors.New("--replace and outfile are mutually exclusive")
		}
		if infile == "" || infile == fetch.Stdin || fetch.IsURL(infile) {
			return errors.New("--replace requires a local infile")
		}
	}
	return nil
}

// selectRenderer creates the Renderer for --format, falling back to config.
func selectRenderer() (core.Renderer, error) {
	renderer, err := render.New(valueOr(flagFormat, cfg.Format))
	if err != nil {
		return nil, fmt.Errorf("selecting renderer: %w", err)
	}
	return renderer, nil
}
