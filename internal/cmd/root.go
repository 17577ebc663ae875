package cmd

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the mathml command tree, all file access goes through fs.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	root := &cobra.Command{
		Use:           "mathml",
		Short:         "Render expression trees into MathML",
		Long:          `Render expression trees, serialized as YAML, into MathML markup`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRenderCommand(fs))

	return root
}

// Execute runs the command line against the OS filesystem and exits with 1 on error.
func Execute() {
	if err := NewRootCommand(afero.NewOsFs()).Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
