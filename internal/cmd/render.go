package cmd

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/eolymp/go-mathml"
)

type renderOptions struct {
	display string
	output  string
	strict  bool
}

func newRenderCommand(fs afero.Fs) *cobra.Command {
	opts := &renderOptions{}

	renderCmd := &cobra.Command{
		Use:   "render [FILE]",
		Short: "Render an expression tree into MathML",
		Long: `Render an expression tree into MathML.

The tree is read from FILE, or from stdin when FILE is omitted or "-".
Undefined nodes, missing nodes and separators outside of a matrix are rendered as
visible parse errors and reported as warnings.`,
		Example: `mathml render formula.yaml --display block -o formula.mml`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := "-"
			if len(args) > 0 {
				file = args[0]
			}

			return runRender(fs, cmd, file, opts)
		},
	}

	renderCmd.Flags().StringVar(&opts.display, "display", "inline", "math root display: inline, block or none to omit the root element")
	renderCmd.Flags().StringVarP(&opts.output, "output", "o", "", "write markup to this file instead of stdout")
	renderCmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when the tree contains nodes rendered as parse errors")

	return renderCmd
}

func runRender(fs afero.Fs, cmd *cobra.Command, file string, opts *renderOptions) error {
	write, err := writer(opts.display)
	if err != nil {
		return err
	}

	node, err := read(fs, cmd.InOrStdin(), file)
	if err != nil {
		return err
	}

	diagnostics := mathml.Diagnostics(node)
	for _, msg := range diagnostics {
		pterm.Warning.WithWriter(cmd.ErrOrStderr()).Printfln("%s: parse error: %s", file, msg)
	}

	if opts.output == "" {
		if err := emit(cmd.OutOrStdout(), write, node); err != nil {
			return err
		}
	} else {
		f, err := fs.Create(opts.output)
		if err != nil {
			return errors.Wrap(err, "unable to create output")
		}

		if err := emit(f, write, node); err != nil {
			f.Close()
			return err
		}

		if err := f.Close(); err != nil {
			return errors.Wrap(err, "unable to close output")
		}
	}

	if opts.strict && len(diagnostics) > 0 {
		return errors.Errorf("%s: %d malformed node(s) in expression tree", file, len(diagnostics))
	}

	return nil
}

func emit(out io.Writer, write func(io.Writer, mathml.Node) error, node mathml.Node) error {
	if err := write(out, node); err != nil {
		return errors.Wrap(err, "unable to write markup")
	}

	if _, err := fmt.Fprintln(out); err != nil {
		return errors.Wrap(err, "unable to write markup")
	}

	return nil
}

// writer picks the rendering function for the display flag
func writer(display string) (func(io.Writer, mathml.Node) error, error) {
	if display == "none" {
		return mathml.Render, nil
	}

	d, err := mathml.ParseDisplay(display)
	if err != nil {
		return nil, err
	}

	return func(w io.Writer, node mathml.Node) error {
		return mathml.Math(w, node, d)
	}, nil
}

func read(fs afero.Fs, stdin io.Reader, file string) (mathml.Node, error) {
	if file == "-" {
		node, err := mathml.Decode(stdin)
		return node, errors.Wrap(err, "unable to decode stdin")
	}

	f, err := fs.Open(file)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open input")
	}

	defer f.Close()

	node, err := mathml.Decode(f)
	return node, errors.Wrapf(err, "unable to decode %s", file)
}
